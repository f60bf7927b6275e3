package repository

import (
	"context"
	"time"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CallRepository handles database operations for calls
type CallRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call repository
func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CallRepository) WithTx(tx *gorm.DB) *CallRepository {
	return &CallRepository{db: tx}
}

// Create creates a new call
func (r *CallRepository) Create(ctx context.Context, call *models.Call) error {
	return r.db.WithContext(ctx).Create(call).Error
}

// GetByID retrieves a call by ID
func (r *CallRepository) GetByID(ctx context.Context, id uint) (*models.Call, error) {
	var call models.Call
	err := r.db.WithContext(ctx).First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetWithLead retrieves a call with its lead
func (r *CallRepository) GetWithLead(ctx context.Context, id uint) (*models.Call, error) {
	var call models.Call
	err := r.db.WithContext(ctx).Preload("Lead").First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetByIDForUpdate retrieves a call by ID and locks its row until the transaction ends
func (r *CallRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Call, error) {
	var call models.Call
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetBySessionIDForUpdate retrieves a call by its telephony session id and locks its row
func (r *CallRepository) GetBySessionIDForUpdate(ctx context.Context, sessionID string) (*models.Call, error) {
	var call models.Call
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&call, "session_id = ?", sessionID).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// List retrieves calls, optionally for one lead, newest first
func (r *CallRepository) List(ctx context.Context, leadID *uint, limit, offset int) ([]models.Call, int64, error) {
	var calls []models.Call
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Call{})
	if leadID != nil {
		query = query.Where("lead_id = ?", *leadID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&calls).Error
	return calls, total, err
}

// HasActiveCall reports whether a lead has a call that has not reached a terminal status
func (r *CallRepository) HasActiveCall(ctx context.Context, leadID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Call{}).
		Where("lead_id = ? AND status NOT IN ?", leadID, []models.CallStatus{models.CallStatusCompleted, models.CallStatusFailed}).
		Count(&count).Error
	return count > 0, err
}

// CompareAndSwap updates a call only while it still holds the expected status.
// It returns ErrConcurrentUpdate when another writer changed the status first.
func (r *CallRepository) CompareAndSwap(ctx context.Context, id uint, expected models.CallStatus, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Call{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrentUpdate
	}
	return nil
}

// ClaimDial marks a queued call as being dialed. It reports false when the call left
// the queued status or another worker holds a claim newer than staleBefore.
func (r *CallRepository) ClaimDial(ctx context.Context, id uint, at, staleBefore time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Call{}).
		Where("id = ? AND status = ?", id, models.CallStatusQueued).
		Where("dial_claimed_at IS NULL OR dial_claimed_at < ?", staleBefore).
		Update("dial_claimed_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateFields updates the given columns of a call without a status guard
func (r *CallRepository) UpdateFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Call{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteByLead deletes every call of a lead
func (r *CallRepository) DeleteByLead(ctx context.Context, leadID uint) error {
	return r.db.WithContext(ctx).Where("lead_id = ?", leadID).Delete(&models.Call{}).Error
}
