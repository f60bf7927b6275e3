package handlers

import (
	"net/http"

	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BulkDispatchHandler handles HTTP requests for bulk calling
type BulkDispatchHandler struct {
	bulkService service.BulkDispatchServiceInterface
	validator   *validator.Validate
}

// NewBulkDispatchHandler creates a new bulk dispatch handler
func NewBulkDispatchHandler(bulkService service.BulkDispatchServiceInterface, validator *validator.Validate) *BulkDispatchHandler {
	return &BulkDispatchHandler{
		bulkService: bulkService,
		validator:   validator,
	}
}

// BulkCall handles POST /voice/bulk-call
// @Summary Bulk call leads
// @Description Queue a call per lead. Each lead gets its own result; one failure never affects the others.
// @Tags calls
// @Accept json
// @Produce json
// @Param request body service.BulkDispatchRequest true "Leads to call"
// @Success 200 {object} service.BulkDispatchResult "Per-lead results"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/bulk-call [post]
func (h *BulkDispatchHandler) BulkCall(c *gin.Context) {
	var req service.BulkDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := service.ValidateRequest(h.validator, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.bulkService.Dispatch(c.Request.Context(), req.LeadIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
