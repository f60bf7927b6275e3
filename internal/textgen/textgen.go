// Package textgen asks a large language model for the next agent utterance or a
// sentiment narrative.
package textgen

import (
	"context"

	apperrors "voice-sales-backend/internal/errors"
)

//go:generate mockgen -source=textgen.go -destination=../mocks/textgen_mocks.go -package=mocks

// Prompt is a single-turn generation request
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Generator produces text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// SentimentInstruction asks the model to score a sales call transcript
const SentimentInstruction = "Analyze the sentiment of this sales call transcript. " +
	"Return a score from -1 (very negative) to 1 (very positive) and a brief explanation."

// Unconfigured is the generator used when no provider is configured. It always fails
// with ErrProviderNotConfigured so callers take their fallback path.
type Unconfigured struct{}

// Generate implements Generator
func (Unconfigured) Generate(context.Context, Prompt) (string, error) {
	return "", apperrors.ErrProviderNotConfigured
}
