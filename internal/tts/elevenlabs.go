// Package tts converts agent utterances to speech.
package tts

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "voice-sales-backend/internal/errors"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=elevenlabs.go -destination=../mocks/tts_mocks.go -package=mocks

// Synthesizer converts text to audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ElevenLabsConfig configures the ElevenLabs text-to-speech API
type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
	BaseURL string
	Timeout time.Duration
}

// ElevenLabsClient synthesizes MPEG audio through ElevenLabs
type ElevenLabsClient struct {
	httpClient *resty.Client
	apiKey     string
	voiceID    string
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// NewElevenLabsClient creates an ElevenLabs client
func NewElevenLabsClient(cfg ElevenLabsConfig) *ElevenLabsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.elevenlabs.io"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/mpeg")

	return &ElevenLabsClient{
		httpClient: client,
		apiKey:     cfg.APIKey,
		voiceID:    cfg.VoiceID,
	}
}

// Synthesize implements Synthesizer
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text", "is required")
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("xi-api-key", c.apiKey).
		SetBody(synthesisRequest{
			Text:          text,
			ModelID:       "eleven_monolingual_v1",
			VoiceSettings: voiceSettings{Stability: 0.5, SimilarityBoost: 0.5},
		}).
		Post("/v1/text-to-speech/" + c.voiceID)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("speech synthesis returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
