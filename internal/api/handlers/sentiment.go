package handlers

import (
	"net/http"

	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SentimentHandler handles HTTP requests for call sentiment
type SentimentHandler struct {
	sentimentService service.SentimentServiceInterface
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentService service.SentimentServiceInterface) *SentimentHandler {
	return &SentimentHandler{
		sentimentService: sentimentService,
	}
}

// AnalyzeSentimentRequest names the call and optionally the text to score
type AnalyzeSentimentRequest struct {
	CallID uint   `json:"call_id" binding:"required"`
	Text   string `json:"text,omitempty"`
}

// AnalyzeSentiment handles POST /voice/analyze-sentiment
// @Summary Analyze call sentiment
// @Description Score the given text, or a generated analysis of the call transcript when text is empty, and store it on the call
// @Tags sentiment
// @Accept json
// @Produce json
// @Param request body AnalyzeSentimentRequest true "Call and optional text"
// @Success 200 {object} service.SentimentResult "Sentiment stored"
// @Failure 400 {object} ErrorResponse "Invalid request or no transcript"
// @Failure 404 {object} ErrorResponse "Call not found"
// @Failure 503 {object} ErrorResponse "Text generation unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/analyze-sentiment [post]
func (h *SentimentHandler) AnalyzeSentiment(c *gin.Context) {
	var req AnalyzeSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.sentimentService.Analyze(c.Request.Context(), req.CallID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
