package service

import (
	"context"
	"fmt"
	"strings"

	"voice-sales-backend/internal/callflow"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/textgen"
)

// FallbackReply is spoken when text generation fails or returns nothing
const FallbackReply = "I understand. Could you tell me more about your current challenges in your business?"

// ConversationService produces the agent's side of a live call
type ConversationService struct {
	store     *repository.Store
	generator textgen.Generator
	agentName string
}

// NewConversationService creates a new conversation service
func NewConversationService(store *repository.Store, generator textgen.Generator, agentName string) *ConversationService {
	return &ConversationService{
		store:     store,
		generator: generator,
		agentName: agentName,
	}
}

// TurnResult is the next agent utterance for a call
type TurnResult struct {
	CallID   uint   `json:"call_id"`
	Text     string `json:"text"`
	Greeting bool   `json:"greeting"`
	Fallback bool   `json:"fallback"`
}

// NextTurn returns the greeting when utterance is empty. Otherwise it asks the text
// generator for a reply and appends both lines to the transcript.
func (s *ConversationService) NextTurn(ctx context.Context, callID uint, utterance string) (*TurnResult, error) {
	call, err := s.store.Calls.GetWithLead(ctx, callID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	if call.Status.IsTerminal() {
		return nil, apperrors.ErrCallTerminal
	}
	if call.Lead == nil {
		return nil, apperrors.ErrLeadNotFound
	}

	playbook, err := s.playbookFor(ctx, call.Lead)
	if err != nil {
		return nil, err
	}

	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return &TurnResult{
			CallID:   call.ID,
			Text:     callflow.Greeting(call.Lead, playbook, s.agentName),
			Greeting: true,
		}, nil
	}

	bundle := callflow.BuildContext(call.Lead, playbook, utterance)
	reply, genErr := s.generator.Generate(ctx, textgen.Prompt{
		System:      bundle.SystemPrompt(),
		User:        bundle.Utterance,
		MaxTokens:   100,
		Temperature: 0.7,
	})
	reply = strings.TrimSpace(reply)

	result := &TurnResult{CallID: call.ID, Text: reply}
	if genErr != nil || reply == "" {
		if genErr != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"call_id": call.ID,
				"error":   genErr.Error(),
			}).Warn("text generation failed, using fallback reply")
		}
		result.Text = FallbackReply
		result.Fallback = true
	}

	err = s.store.InTransaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Calls.GetByIDForUpdate(ctx, call.ID)
		if err != nil {
			return err
		}
		if current.Status.IsTerminal() {
			return apperrors.ErrCallTerminal
		}
		transcript := appendLine(current.Transcript, "Customer: "+utterance)
		transcript = appendLine(transcript, "Agent: "+result.Text)
		return tx.Calls.UpdateFields(ctx, current.ID, map[string]interface{}{"transcript": transcript})
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to append transcript: %w", err)
	}
	return result, nil
}

// playbookFor returns the lead's playbook, or nil when its industry has none
func (s *ConversationService) playbookFor(ctx context.Context, lead *models.Lead) (*models.Playbook, error) {
	playbook, err := s.store.Playbooks.GetByIndustry(ctx, lead.Industry)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get playbook: %w", err)
	}
	return playbook, nil
}
