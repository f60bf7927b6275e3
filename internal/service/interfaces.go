package service

import (
	"context"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error)
	GetByID(ctx context.Context, id uint) (*LeadDetailResponse, error)
	List(ctx context.Context, filter repository.LeadFilter, page, perPage int) (*LeadListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateLeadRequest) (*models.Lead, error)
	Delete(ctx context.Context, id uint) error
	BulkImport(ctx context.Context, rows []ImportRow) (*ImportResult, error)
}

// PlaybookServiceInterface defines the interface for playbook service
type PlaybookServiceInterface interface {
	Create(ctx context.Context, req *CreatePlaybookRequest) (*models.Playbook, error)
	GetAll(ctx context.Context) ([]models.Playbook, error)
	GetByIndustry(ctx context.Context, industry string) (*models.Playbook, error)
}

// CallServiceInterface defines the interface for the call lifecycle
type CallServiceInterface interface {
	Initiate(ctx context.Context, leadID uint) (*models.Call, error)
	ApplyTelephonyEvent(ctx context.Context, event TelephonyEvent) (*EventResult, error)
	EndCall(ctx context.Context, callID uint, req *EndCallRequest) (*EndCallResult, error)
	GetByID(ctx context.Context, id uint) (*models.Call, error)
	List(ctx context.Context, leadID *uint, page, perPage int) (*CallListResponse, error)
}

// ConversationServiceInterface defines the interface for live call turns
type ConversationServiceInterface interface {
	NextTurn(ctx context.Context, callID uint, utterance string) (*TurnResult, error)
}

// SentimentServiceInterface defines the interface for call sentiment scoring
type SentimentServiceInterface interface {
	Analyze(ctx context.Context, callID uint, rawText string) (*SentimentResult, error)
}

// FollowUpServiceInterface defines the interface for follow-up messages
type FollowUpServiceInterface interface {
	Resolve(ctx context.Context, callID uint, channel models.Channel) (*FollowUpMessage, error)
	Send(ctx context.Context, callID uint, channel models.Channel) (*FollowUpMessage, error)
}

// DashboardServiceInterface defines the interface for dashboard metrics
type DashboardServiceInterface interface {
	GetMetrics(ctx context.Context) (*DashboardMetrics, error)
}

// BulkDispatchServiceInterface defines the interface for bulk call dispatch
type BulkDispatchServiceInterface interface {
	Dispatch(ctx context.Context, leadIDs []uint) (*BulkDispatchResult, error)
}

var (
	_ LeadServiceInterface         = (*LeadService)(nil)
	_ PlaybookServiceInterface     = (*PlaybookService)(nil)
	_ CallServiceInterface         = (*CallService)(nil)
	_ ConversationServiceInterface = (*ConversationService)(nil)
	_ SentimentServiceInterface    = (*SentimentService)(nil)
	_ FollowUpServiceInterface     = (*FollowUpService)(nil)
	_ DashboardServiceInterface    = (*DashboardService)(nil)
	_ BulkDispatchServiceInterface = (*BulkDispatchService)(nil)
)
