package repository

import (
	"context"

	"voice-sales-backend/internal/database/models"

	"gorm.io/gorm"
)

// MetricsRepository runs read-only aggregations over leads and calls
type MetricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *gorm.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

type groupCount struct {
	Bucket string
	Count  int64
}

// CountLeads returns the number of leads
func (r *MetricsRepository) CountLeads(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).Count(&total).Error
	return total, err
}

// CountCalls returns the number of calls
func (r *MetricsRepository) CountCalls(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Call{}).Count(&total).Error
	return total, err
}

// LeadsByStatus counts leads per funnel status
func (r *MetricsRepository) LeadsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &models.Lead{}, "status", "")
}

// CallsByOutcome counts completed calls per outcome
func (r *MetricsRepository) CallsByOutcome(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &models.Call{}, "outcome", "outcome IS NOT NULL")
}

// CallsByStatus counts calls per lifecycle status
func (r *MetricsRepository) CallsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &models.Call{}, "status", "")
}

// AverageDuration returns the mean duration in seconds over calls with a positive duration
func (r *MetricsRepository) AverageDuration(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&models.Call{}).
		Where("duration > 0").
		Select("COALESCE(AVG(CAST(duration AS FLOAT)), 0)").
		Row().Scan(&avg)
	return avg, err
}

// RecentCalls returns the newest calls with their leads
func (r *MetricsRepository) RecentCalls(ctx context.Context, limit int) ([]models.Call, error) {
	var calls []models.Call
	err := r.db.WithContext(ctx).Preload("Lead").Order("created_at DESC, id DESC").Limit(limit).Find(&calls).Error
	return calls, err
}

func (r *MetricsRepository) groupBy(ctx context.Context, model interface{}, column, where string) (map[string]int64, error) {
	var rows []groupCount
	query := r.db.WithContext(ctx).Model(model).Select(column + " AS bucket, COUNT(*) AS count")
	if where != "" {
		query = query.Where(where)
	}
	if err := query.Group(column).Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Count
	}
	return counts, nil
}
