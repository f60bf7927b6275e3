package repository

import (
	"context"

	"voice-sales-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadFilter narrows lead listings
type LeadFilter struct {
	Status   models.LeadStatus
	Industry string
}

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeadRepository) WithTx(tx *gorm.DB) *LeadRepository {
	return &LeadRepository{db: tx}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByIDForUpdate retrieves a lead by ID and locks its row until the transaction ends
func (r *LeadRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByPhone retrieves a lead by its normalized phone number
func (r *LeadRepository) GetByPhone(ctx context.Context, phone string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).First(&lead, "phone = ?", phone).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetWithCalls retrieves a lead with its calls, newest first
func (r *LeadRepository) GetWithCalls(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).
		Preload("Calls", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC, id DESC") }).
		First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching the filter, newest first
func (r *LeadRepository) List(ctx context.Context, filter LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Lead{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// UpdateFields updates the given columns of a lead
func (r *LeadRepository) UpdateFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Lead{}).Where("id = ?", id).Updates(updates).Error
}

// ApplyScore stores the funnel status and score computed by the scoring policy
func (r *LeadRepository) ApplyScore(ctx context.Context, id uint, status models.LeadStatus, score int) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{
		"status": status,
		"score":  score,
	})
}

// Delete deletes a lead
func (r *LeadRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id).Error
}

// PhonesIn returns which of the given phone numbers already belong to a lead
func (r *LeadRepository) PhonesIn(ctx context.Context, phones []string) ([]string, error) {
	var existing []string
	if len(phones) == 0 {
		return existing, nil
	}
	err := r.db.WithContext(ctx).Model(&models.Lead{}).Where("phone IN ?", phones).Pluck("phone", &existing).Error
	return existing, err
}
