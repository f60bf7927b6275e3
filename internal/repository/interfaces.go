package repository

import (
	"context"
	"time"

	"voice-sales-backend/internal/database/models"
)

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id uint) (*models.Lead, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Lead, error)
	GetByPhone(ctx context.Context, phone string) (*models.Lead, error)
	GetWithCalls(ctx context.Context, id uint) (*models.Lead, error)
	List(ctx context.Context, filter LeadFilter, limit, offset int) ([]models.Lead, int64, error)
	UpdateFields(ctx context.Context, id uint, updates map[string]interface{}) error
	ApplyScore(ctx context.Context, id uint, status models.LeadStatus, score int) error
	Delete(ctx context.Context, id uint) error
	PhonesIn(ctx context.Context, phones []string) ([]string, error)
}

// CallRepositoryInterface defines the interface for call repository operations
type CallRepositoryInterface interface {
	Create(ctx context.Context, call *models.Call) error
	GetByID(ctx context.Context, id uint) (*models.Call, error)
	GetWithLead(ctx context.Context, id uint) (*models.Call, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Call, error)
	GetBySessionIDForUpdate(ctx context.Context, sessionID string) (*models.Call, error)
	List(ctx context.Context, leadID *uint, limit, offset int) ([]models.Call, int64, error)
	HasActiveCall(ctx context.Context, leadID uint) (bool, error)
	CompareAndSwap(ctx context.Context, id uint, expected models.CallStatus, updates map[string]interface{}) error
	ClaimDial(ctx context.Context, id uint, at, staleBefore time.Time) (bool, error)
	UpdateFields(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteByLead(ctx context.Context, leadID uint) error
}

// PlaybookRepositoryInterface defines the interface for playbook repository operations
type PlaybookRepositoryInterface interface {
	Create(ctx context.Context, playbook *models.Playbook) error
	GetByIndustry(ctx context.Context, industry string) (*models.Playbook, error)
	GetAll(ctx context.Context) ([]models.Playbook, error)
	ExistsForIndustry(ctx context.Context, industry string) (bool, error)
}

// MetricsRepositoryInterface defines the interface for dashboard aggregations
type MetricsRepositoryInterface interface {
	CountLeads(ctx context.Context) (int64, error)
	CountCalls(ctx context.Context) (int64, error)
	LeadsByStatus(ctx context.Context) (map[string]int64, error)
	CallsByOutcome(ctx context.Context) (map[string]int64, error)
	CallsByStatus(ctx context.Context) (map[string]int64, error)
	AverageDuration(ctx context.Context) (float64, error)
	RecentCalls(ctx context.Context, limit int) ([]models.Call, error)
}
