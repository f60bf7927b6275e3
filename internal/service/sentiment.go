package service

import (
	"context"
	"fmt"
	"strings"

	"voice-sales-backend/internal/callflow"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/textgen"
)

// SentimentService scores calls from free-text sentiment analysis
type SentimentService struct {
	store     *repository.Store
	generator textgen.Generator
}

// NewSentimentService creates a new sentiment service
func NewSentimentService(store *repository.Store, generator textgen.Generator) *SentimentService {
	return &SentimentService{store: store, generator: generator}
}

// SentimentResult is the persisted sentiment of a call
type SentimentResult struct {
	CallID          uint    `json:"call_id"`
	SentimentScore  float64 `json:"sentiment_score"`
	NormalizedScore float64 `json:"normalized_score"`
	Analysis        string  `json:"analysis"`
}

// Analyze extracts a score from rawText, or from a narrative generated for the call's
// transcript when rawText is empty, and stores it on the call. Terminal calls are
// accepted since analysis usually runs after the call ended.
func (s *SentimentService) Analyze(ctx context.Context, callID uint, rawText string) (*SentimentResult, error) {
	call, err := s.store.Calls.GetByID(ctx, callID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}

	analysis := strings.TrimSpace(rawText)
	if analysis == "" {
		if strings.TrimSpace(call.Transcript) == "" {
			return nil, apperrors.ErrNoTranscript
		}
		narrative, err := s.generator.Generate(ctx, textgen.Prompt{
			System:      textgen.SentimentInstruction,
			User:        call.Transcript,
			MaxTokens:   200,
			Temperature: 0.3,
		})
		if err != nil {
			return nil, apperrors.NewCollaboratorUnavailableError("textgen", err)
		}
		analysis = strings.TrimSpace(narrative)
	}

	score := callflow.ExtractSentiment(analysis)

	err = s.store.InTransaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Calls.GetByIDForUpdate(ctx, callID)
		if err != nil {
			return err
		}
		return tx.Calls.UpdateFields(ctx, current.ID, map[string]interface{}{
			"sentiment_score": score,
			"notes":           appendLine(current.Notes, "Sentiment Analysis: "+analysis),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store sentiment: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id":         callID,
		"sentiment_score": score,
	}).Info("call sentiment stored")

	return &SentimentResult{
		CallID:          callID,
		SentimentScore:  score,
		NormalizedScore: callflow.NormalizedSentiment(score),
		Analysis:        analysis,
	}, nil
}
