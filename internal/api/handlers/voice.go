package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/tts"

	"github.com/gin-gonic/gin"
)

const (
	twimlVoice    = "alice"
	twimlLanguage = "en-US"
	// technicalIssueReply is spoken before hanging up when the turn cannot be produced
	technicalIssueReply = "I'm sorry, there was a technical issue. We'll call you back shortly."
)

// VoiceHandler serves the telephony provider's callbacks and speech synthesis
type VoiceHandler struct {
	conversationService service.ConversationServiceInterface
	callService         service.CallServiceInterface
	synthesizer         tts.Synthesizer
}

// NewVoiceHandler creates a new voice handler. synthesizer may be nil when speech
// synthesis is not configured.
func NewVoiceHandler(conversationService service.ConversationServiceInterface, callService service.CallServiceInterface, synthesizer tts.Synthesizer) *VoiceHandler {
	return &VoiceHandler{
		conversationService: conversationService,
		callService:         callService,
		synthesizer:         synthesizer,
	}
}

type twimlResponse struct {
	XMLName xml.Name     `xml:"Response"`
	Say     *twimlSay    `xml:"Say,omitempty"`
	Gather  *twimlGather `xml:"Gather,omitempty"`
	Hangup  *struct{}    `xml:"Hangup,omitempty"`
}

type twimlSay struct {
	Voice string `xml:"voice,attr,omitempty"`
	Text  string `xml:",chardata"`
}

type twimlGather struct {
	Input         string `xml:"input,attr"`
	Action        string `xml:"action,attr"`
	SpeechTimeout string `xml:"speechTimeout,attr"`
	Language      string `xml:"language,attr"`
}

// TurnRequest carries what the customer said
type TurnRequest struct {
	Utterance string `json:"utterance"`
}

// SynthesizeRequest carries the text to speak
type SynthesizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Webhook handles POST /voice/webhook/:call_id
// @Summary Voice webhook
// @Description TwiML for the next agent turn. Without SpeechResult the greeting is spoken.
// @Tags voice
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param call_id path int true "Call ID"
// @Param SpeechResult formData string false "Transcribed customer speech"
// @Success 200 {string} string "TwiML response"
// @Router /voice/webhook/{call_id} [post]
func (h *VoiceHandler) Webhook(c *gin.Context) {
	callID, err := strconv.ParseUint(c.Param("call_id"), 10, 64)
	if err != nil || callID == 0 {
		h.renderTwiML(c, hangupResponse())
		return
	}

	turn, err := h.conversationService.NextTurn(c.Request.Context(), uint(callID), strings.TrimSpace(c.PostForm("SpeechResult")))
	if err != nil {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"call_id": callID,
			"error":   err.Error(),
		}).Warn("voice turn failed")
		h.renderTwiML(c, hangupResponse())
		return
	}

	h.renderTwiML(c, twimlResponse{
		Say: &twimlSay{Voice: twimlVoice, Text: turn.Text},
		Gather: &twimlGather{
			Input:         "speech",
			Action:        c.Request.URL.Path,
			SpeechTimeout: "auto",
			Language:      twimlLanguage,
		},
	})
}

func hangupResponse() twimlResponse {
	return twimlResponse{
		Say:    &twimlSay{Text: technicalIssueReply},
		Hangup: &struct{}{},
	}
}

func (h *VoiceHandler) renderTwiML(c *gin.Context, resp twimlResponse) {
	body, err := xml.Marshal(resp)
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// Status handles POST /voice/status
// @Summary Telephony status callback
// @Description Apply a provider call status event. Re-delivered events are acknowledged with applied=false.
// @Tags voice
// @Accept x-www-form-urlencoded
// @Produce json
// @Param CallSid formData string true "Provider session id"
// @Param CallStatus formData string true "Provider call status"
// @Param CallDuration formData int false "Call duration in seconds"
// @Param RecordingUrl formData string false "Recording URL"
// @Success 200 {object} service.EventResult "Event processed"
// @Failure 400 {object} ErrorResponse "Invalid event"
// @Failure 404 {object} ErrorResponse "No call for this session"
// @Failure 409 {object} ErrorResponse "Event conflicts with the call status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /voice/status [post]
func (h *VoiceHandler) Status(c *gin.Context) {
	event := service.TelephonyEvent{
		SessionID: c.PostForm("CallSid"),
		Status:    c.PostForm("CallStatus"),
	}
	if raw := strings.TrimSpace(c.PostForm("CallDuration")); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("CallDuration", "must be a whole number of seconds"))
			return
		}
		event.Duration = &duration
	}
	if url := strings.TrimSpace(c.PostForm("RecordingUrl")); url != "" {
		event.RecordingURL = &url
	}

	result, err := h.callService.ApplyTelephonyEvent(c.Request.Context(), event)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Turn handles POST /calls/:id/turn
// @Summary Next conversation turn
// @Description JSON form of the voice webhook. An empty utterance returns the greeting.
// @Tags voice
// @Accept json
// @Produce json
// @Param id path int true "Call ID"
// @Param request body TurnRequest false "Customer utterance"
// @Success 200 {object} service.TurnResult "Agent reply"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Call not found"
// @Failure 409 {object} ErrorResponse "Call already ended"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /calls/{id}/turn [post]
func (h *VoiceHandler) Turn(c *gin.Context) {
	callID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TurnRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	turn, err := h.conversationService.NextTurn(c.Request.Context(), callID, strings.TrimSpace(req.Utterance))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, turn)
}

// Synthesize handles POST /voice/synthesize
// @Summary Synthesize speech
// @Description Convert text to speech with the configured voice
// @Tags voice
// @Accept json
// @Produce audio/mpeg
// @Param request body SynthesizeRequest true "Text to speak"
// @Success 200 {file} binary "MP3 audio"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Speech synthesis unavailable"
// @Router /voice/synthesize [post]
func (h *VoiceHandler) Synthesize(c *gin.Context) {
	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if h.synthesizer == nil {
		respondError(c, apperrors.NewCollaboratorUnavailableError("tts", apperrors.ErrProviderNotConfigured))
		return
	}

	audio, err := h.synthesizer.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, apperrors.NewCollaboratorUnavailableError("tts", err))
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
