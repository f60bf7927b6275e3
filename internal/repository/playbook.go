package repository

import (
	"context"

	"voice-sales-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlaybookRepository handles database operations for playbooks
type PlaybookRepository struct {
	db *gorm.DB
}

// NewPlaybookRepository creates a new playbook repository
func NewPlaybookRepository(db *gorm.DB) *PlaybookRepository {
	return &PlaybookRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PlaybookRepository) WithTx(tx *gorm.DB) *PlaybookRepository {
	return &PlaybookRepository{db: tx}
}

// Create creates a new playbook
func (r *PlaybookRepository) Create(ctx context.Context, playbook *models.Playbook) error {
	return r.db.WithContext(ctx).Create(playbook).Error
}

// GetByIndustry retrieves the playbook for an industry
func (r *PlaybookRepository) GetByIndustry(ctx context.Context, industry string) (*models.Playbook, error) {
	var playbook models.Playbook
	err := r.db.WithContext(ctx).First(&playbook, "industry = ?", industry).Error
	if err != nil {
		return nil, err
	}
	return &playbook, nil
}

// GetAll retrieves every playbook ordered by industry
func (r *PlaybookRepository) GetAll(ctx context.Context) ([]models.Playbook, error) {
	var playbooks []models.Playbook
	err := r.db.WithContext(ctx).Order("industry ASC").Find(&playbooks).Error
	return playbooks, err
}

// ExistsForIndustry reports whether a playbook exists for an industry
func (r *PlaybookRepository) ExistsForIndustry(ctx context.Context, industry string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Playbook{}).Where("industry = ?", industry).Count(&count).Error
	return count > 0, err
}
