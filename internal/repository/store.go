package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle
type Store struct {
	db        *gorm.DB
	Leads     LeadRepositoryInterface
	Calls     CallRepositoryInterface
	Playbooks PlaybookRepositoryInterface
	Metrics   MetricsRepositoryInterface
}

// NewStore creates a store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Leads:     NewLeadRepository(db),
		Calls:     NewCallRepository(db),
		Playbooks: NewPlaybookRepository(db),
		Metrics:   NewMetricsRepository(db),
	}
}

// InTransaction runs fn with a store bound to a single transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) InTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
