package handlers

import (
	"net/http"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowUpHandler handles HTTP requests for follow-up messages
type FollowUpHandler struct {
	followUpService service.FollowUpServiceInterface
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(followUpService service.FollowUpServiceInterface) *FollowUpHandler {
	return &FollowUpHandler{
		followUpService: followUpService,
	}
}

// FollowUpRequest names the call and channel. Send delivers the message as well.
type FollowUpRequest struct {
	CallID  uint           `json:"call_id" binding:"required"`
	Channel models.Channel `json:"channel"`
	Send    bool           `json:"send"`
}

// GenerateFollowUp handles POST /voice/generate-follow-up
// @Summary Generate a follow-up
// @Description Resolve the playbook template for a completed call's outcome and channel, and deliver it when send is true
// @Tags follow-ups
// @Accept json
// @Produce json
// @Param request body FollowUpRequest true "Call and channel"
// @Success 200 {object} service.FollowUpMessage "Resolved follow-up"
// @Failure 400 {object} ErrorResponse "Invalid channel or missing email"
// @Failure 404 {object} ErrorResponse "Call or template not found"
// @Failure 409 {object} ErrorResponse "Call is not completed"
// @Failure 503 {object} ErrorResponse "Delivery failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/generate-follow-up [post]
func (h *FollowUpHandler) GenerateFollowUp(c *gin.Context) {
	var req FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Channel == "" {
		req.Channel = models.ChannelEmail
	}

	var (
		message *service.FollowUpMessage
		err     error
	)
	if req.Send {
		message, err = h.followUpService.Send(c.Request.Context(), req.CallID, req.Channel)
	} else {
		message, err = h.followUpService.Resolve(c.Request.Context(), req.CallID, req.Channel)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}
