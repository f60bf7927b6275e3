package handlers

import (
	"net/http"
	"strings"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/leadcsv"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxImportFileSize bounds CSV uploads
const maxImportFileSize = 10 << 20

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// BulkImportRequest is the JSON form of a bulk lead import
type BulkImportRequest struct {
	Leads []service.CreateLeadRequest `json:"leads" binding:"required"`
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Get leads, newest first, with optional status and industry filters
// @Tags leads
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "Lead status"
// @Param industry query string false "Industry"
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := queryInt(c, "per_page", 20)
	if !ok {
		return
	}

	filter := repository.LeadFilter{
		Status:   models.LeadStatus(c.Query("status")),
		Industry: c.Query("industry"),
	}

	leads, err := h.leadService.List(c.Request.Context(), filter, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// CreateLead handles POST /leads
// @Summary Create a lead
// @Description Create a lead. The phone number is normalized and must be unique.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead "Successfully created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Lead with this phone number already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// BulkImportLeads handles POST /leads/bulk
// @Summary Bulk import leads
// @Description Import leads from a CSV upload (multipart field "file", header row required) or a JSON body.
// @Description Rows that fail are reported and never abort the others. CSV rows are numbered from 2, JSON rows from 1.
// @Tags leads
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "CSV file with name, phone, industry, email, company, notes columns"
// @Param leads body BulkImportRequest false "Leads to import"
// @Success 200 {object} service.ImportResult "Import summary"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/bulk [post]
func (h *LeadHandler) BulkImportLeads(c *gin.Context) {
	var rows []service.ImportRow
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		parsed, ok := h.readCSVUpload(c)
		if !ok {
			return
		}
		rows = parsed
	} else {
		var req BulkImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		rows = make([]service.ImportRow, len(req.Leads))
		for i, lead := range req.Leads {
			rows[i] = service.ImportRow{Row: i + 1, CreateLeadRequest: lead}
		}
	}

	result, err := h.leadService.BulkImport(c.Request.Context(), rows)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *LeadHandler) readCSVUpload(c *gin.Context) ([]service.ImportRow, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportFileSize)
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided"})
		return nil, false
	}
	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file selected"})
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to read uploaded file"})
		return nil, false
	}
	defer file.Close()

	rows, err := leadcsv.Parse(file)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return rows, true
}

// GetLead handles GET /leads/:id
// @Summary Get a lead
// @Description Get a lead with its call history
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} service.LeadDetailResponse "Successfully retrieved lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Update the descriptive fields of a lead. Status and score only move through call outcomes.
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param lead body service.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} models.Lead "Successfully updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Delete a lead
// @Description Delete a lead together with its calls
// @Tags leads
// @Param id path int true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
