package service

import (
	"context"
	"fmt"
	"strings"

	"voice-sales-backend/internal/callflow"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/notify"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/telephony"
)

// FollowUpService resolves and delivers post-call follow-up messages
type FollowUpService struct {
	store     *repository.Store
	mailer    notify.Mailer
	sms       telephony.SMSSender
	agentName string
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(store *repository.Store, mailer notify.Mailer, sms telephony.SMSSender, agentName string) *FollowUpService {
	return &FollowUpService{
		store:     store,
		mailer:    mailer,
		sms:       sms,
		agentName: agentName,
	}
}

// FollowUpMessage is a resolved follow-up with its recipient
type FollowUpMessage struct {
	CallID uint `json:"call_id"`
	callflow.FollowUp
	Recipient string `json:"recipient"`
	Sent      bool   `json:"sent"`
}

// Resolve picks the playbook template for the call's outcome and channel and fills in
// the placeholders
func (s *FollowUpService) Resolve(ctx context.Context, callID uint, channel models.Channel) (*FollowUpMessage, error) {
	if !channel.IsValid() {
		return nil, apperrors.ErrInvalidChannel
	}

	call, err := s.store.Calls.GetWithLead(ctx, callID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	if call.Status != models.CallStatusCompleted {
		return nil, apperrors.ErrCallNotCompleted
	}
	lead := call.Lead
	if lead == nil {
		return nil, apperrors.ErrLeadNotFound
	}

	playbook, err := s.store.Playbooks.GetByIndustry(ctx, lead.Industry)
	if err != nil {
		if !repository.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get playbook: %w", err)
		}
		playbook = nil
	}

	followUp, err := callflow.ResolveFollowUp(playbook, call.Outcome, channel, callflow.Placeholders{
		LeadName:  lead.Name,
		Company:   lead.Company,
		AgentName: s.agentName,
	})
	if err != nil {
		return nil, err
	}

	recipient := lead.Phone
	if channel == models.ChannelEmail {
		recipient = lead.Email
	}

	return &FollowUpMessage{
		CallID:    call.ID,
		FollowUp:  followUp,
		Recipient: recipient,
	}, nil
}

// Send resolves the follow-up and delivers it by email or SMS
func (s *FollowUpService) Send(ctx context.Context, callID uint, channel models.Channel) (*FollowUpMessage, error) {
	msg, err := s.Resolve(ctx, callID, channel)
	if err != nil {
		return nil, err
	}

	switch channel {
	case models.ChannelEmail:
		if strings.TrimSpace(msg.Recipient) == "" {
			return nil, apperrors.ErrMissingEmail
		}
		subject := fmt.Sprintf("Following up on our call - %s", s.agentName)
		if err := s.mailer.SendEmail(ctx, msg.Recipient, subject, msg.Message); err != nil {
			return nil, apperrors.NewCollaboratorUnavailableError("email", err)
		}
	case models.ChannelSMS:
		if err := s.sms.SendSMS(ctx, msg.Recipient, msg.Message); err != nil {
			return nil, apperrors.NewCollaboratorUnavailableError("sms", err)
		}
	}

	msg.Sent = true
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id":      callID,
		"channel":      channel,
		"template_key": msg.TemplateKey,
	}).Info("follow-up sent")
	return msg, nil
}
