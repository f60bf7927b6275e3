package handlers

import (
	"net/http"

	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaybookHandler handles HTTP requests for playbook operations
type PlaybookHandler struct {
	playbookService service.PlaybookServiceInterface
}

// NewPlaybookHandler creates a new playbook handler
func NewPlaybookHandler(playbookService service.PlaybookServiceInterface) *PlaybookHandler {
	return &PlaybookHandler{
		playbookService: playbookService,
	}
}

// ListPlaybooks handles GET /playbooks
// @Summary List playbooks
// @Description Get every industry playbook
// @Tags playbooks
// @Produce json
// @Success 200 {array} models.Playbook "Successfully retrieved playbooks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /playbooks [get]
func (h *PlaybookHandler) ListPlaybooks(c *gin.Context) {
	playbooks, err := h.playbookService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, playbooks)
}

// CreatePlaybook handles POST /playbooks
// @Summary Create a playbook
// @Description Create the playbook for an industry. An industry has at most one playbook.
// @Tags playbooks
// @Accept json
// @Produce json
// @Param playbook body service.CreatePlaybookRequest true "Playbook data"
// @Success 201 {object} models.Playbook "Successfully created playbook"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Playbook for this industry already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /playbooks [post]
func (h *PlaybookHandler) CreatePlaybook(c *gin.Context) {
	var req service.CreatePlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	playbook, err := h.playbookService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, playbook)
}

// GetPlaybook handles GET /playbooks/:industry
// @Summary Get a playbook
// @Description Get the playbook of an industry
// @Tags playbooks
// @Produce json
// @Param industry path string true "Industry"
// @Success 200 {object} models.Playbook "Successfully retrieved playbook"
// @Failure 404 {object} ErrorResponse "Playbook not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /playbooks/{industry} [get]
func (h *PlaybookHandler) GetPlaybook(c *gin.Context) {
	playbook, err := h.playbookService.GetByIndustry(c.Request.Context(), c.Param("industry"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, playbook)
}
