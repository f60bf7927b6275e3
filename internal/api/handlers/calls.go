package handlers

import (
	"net/http"
	"strconv"

	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CallHandler handles HTTP requests for the call lifecycle
type CallHandler struct {
	callService service.CallServiceInterface
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService service.CallServiceInterface) *CallHandler {
	return &CallHandler{
		callService: callService,
	}
}

// InitiateCallRequest names the lead to call
type InitiateCallRequest struct {
	LeadID uint `json:"lead_id" binding:"required"`
}

// EndCallBody is the end-call action addressed by call id in the body
type EndCallBody struct {
	CallID uint `json:"call_id" binding:"required"`
	service.EndCallRequest
}

// InitiateCall handles POST /voice/initiate-call
// @Summary Initiate a call
// @Description Create a call for a lead and dial it. A dialing failure leaves the call failed with the reason in its notes.
// @Tags calls
// @Accept json
// @Produce json
// @Param request body InitiateCallRequest true "Lead to call"
// @Success 201 {object} models.Call "Call created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Lead or playbook not found"
// @Failure 409 {object} ErrorResponse "Lead already has an active call"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/initiate-call [post]
func (h *CallHandler) InitiateCall(c *gin.Context) {
	var req InitiateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.initiate(c, req.LeadID)
}

// InitiateLeadCall handles POST /leads/:id/calls
// @Summary Initiate a call for a lead
// @Description Create a call for the lead in the path and dial it
// @Tags calls
// @Produce json
// @Param id path int true "Lead ID"
// @Success 201 {object} models.Call "Call created"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead or playbook not found"
// @Failure 409 {object} ErrorResponse "Lead already has an active call"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id}/calls [post]
func (h *CallHandler) InitiateLeadCall(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.initiate(c, leadID)
}

func (h *CallHandler) initiate(c *gin.Context, leadID uint) {
	call, err := h.callService.Initiate(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, call)
}

// EndCall handles POST /voice/end-call
// @Summary End a call
// @Description Complete an in-progress call with an outcome and score its lead in one transaction
// @Tags calls
// @Accept json
// @Produce json
// @Param request body EndCallBody true "Call and outcome"
// @Success 200 {object} service.EndCallResult "Call completed and lead scored"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Call not found"
// @Failure 409 {object} ErrorResponse "Call already ended or was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/end-call [post]
func (h *CallHandler) EndCall(c *gin.Context) {
	var req EndCallBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.end(c, req.CallID, &req.EndCallRequest)
}

// EndCallByID handles POST /calls/:id/end
// @Summary End a call by ID
// @Description Complete the call in the path with an outcome and score its lead
// @Tags calls
// @Accept json
// @Produce json
// @Param id path int true "Call ID"
// @Param request body service.EndCallRequest true "Outcome"
// @Success 200 {object} service.EndCallResult "Call completed and lead scored"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Call not found"
// @Failure 409 {object} ErrorResponse "Call already ended or was modified concurrently"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calls/{id}/end [post]
func (h *CallHandler) EndCallByID(c *gin.Context) {
	callID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.EndCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.end(c, callID, &req)
}

func (h *CallHandler) end(c *gin.Context, callID uint, req *service.EndCallRequest) {
	result, err := h.callService.EndCall(c.Request.Context(), callID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCall handles GET /calls/:id
// @Summary Get a call
// @Description Get a call with its lead
// @Tags calls
// @Produce json
// @Param id path int true "Call ID"
// @Success 200 {object} models.Call "Successfully retrieved call"
// @Failure 400 {object} ErrorResponse "Invalid call ID"
// @Failure 404 {object} ErrorResponse "Call not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calls/{id} [get]
func (h *CallHandler) GetCall(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	call, err := h.callService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, call)
}

// ListCalls handles GET /calls
// @Summary List calls
// @Description Get calls, newest first, optionally for one lead
// @Tags calls
// @Produce json
// @Param lead_id query int false "Lead ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} service.CallListResponse "Successfully retrieved calls"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calls [get]
func (h *CallHandler) ListCalls(c *gin.Context) {
	var leadID *uint
	if raw := c.Query("lead_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead_id"})
			return
		}
		v := uint(id)
		leadID = &v
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := queryInt(c, "per_page", 20)
	if !ok {
		return
	}

	calls, err := h.callService.List(c.Request.Context(), leadID, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calls)
}
