package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

const recentCallsLimit = 10

// DashboardService aggregates lead and call metrics
type DashboardService struct {
	metrics repository.MetricsRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{metrics: store.Metrics}
}

// RecentCall is a call summary shown on the dashboard
type RecentCall struct {
	ID             uint                `json:"id"`
	LeadID         uint                `json:"lead_id"`
	LeadName       string              `json:"lead_name"`
	LeadCompany    string              `json:"lead_company"`
	Status         models.CallStatus   `json:"status"`
	Outcome        *models.CallOutcome `json:"outcome"`
	Duration       int                 `json:"duration"`
	SentimentScore float64             `json:"sentiment_score"`
	CreatedAt      time.Time           `json:"created_at"`
}

// DashboardMetrics is the read-only summary of the funnel
type DashboardMetrics struct {
	TotalLeads      int64            `json:"total_leads"`
	TotalCalls      int64            `json:"total_calls"`
	ConversionRate  float64          `json:"conversion_rate"`
	AvgCallDuration float64          `json:"avg_call_duration"`
	LeadsByStatus   map[string]int64 `json:"leads_by_status"`
	CallsByOutcome  map[string]int64 `json:"calls_by_outcome"`
	CallsByStatus   map[string]int64 `json:"calls_by_status"`
	RecentCalls     []RecentCall     `json:"recent_calls"`
}

// GetMetrics computes the dashboard metrics
func (s *DashboardService) GetMetrics(ctx context.Context) (*DashboardMetrics, error) {
	var (
		m      DashboardMetrics
		recent []models.Call
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.TotalLeads, err = s.metrics.CountLeads(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.TotalCalls, err = s.metrics.CountCalls(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.LeadsByStatus, err = s.metrics.LeadsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.CallsByOutcome, err = s.metrics.CallsByOutcome(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.CallsByStatus, err = s.metrics.CallsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		m.AvgCallDuration, err = s.metrics.AverageDuration(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.metrics.RecentCalls(gctx, recentCallsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard metrics: %w", err)
	}

	if m.TotalLeads > 0 {
		converted := m.LeadsByStatus[string(models.LeadStatusConverted)]
		m.ConversionRate = round2(float64(converted) / float64(m.TotalLeads) * 100)
	}
	m.AvgCallDuration = round2(m.AvgCallDuration)

	// every bucket is reported, including the empty ones
	for _, status := range models.LeadStatuses {
		m.LeadsByStatus = withBucket(m.LeadsByStatus, string(status))
	}
	for _, status := range models.CallStatuses {
		m.CallsByStatus = withBucket(m.CallsByStatus, string(status))
	}
	for _, outcome := range models.CallOutcomes {
		m.CallsByOutcome = withBucket(m.CallsByOutcome, string(outcome))
	}

	m.RecentCalls = make([]RecentCall, 0, len(recent))
	for _, call := range recent {
		rc := RecentCall{
			ID:             call.ID,
			LeadID:         call.LeadID,
			Status:         call.Status,
			Outcome:        call.Outcome,
			Duration:       call.Duration,
			SentimentScore: call.SentimentScore,
			CreatedAt:      call.CreatedAt,
		}
		if call.Lead != nil {
			rc.LeadName = call.Lead.Name
			rc.LeadCompany = call.Lead.Company
		}
		m.RecentCalls = append(m.RecentCalls, rc)
	}
	return &m, nil
}

func withBucket(counts map[string]int64, key string) map[string]int64 {
	if counts == nil {
		counts = map[string]int64{}
	}
	if _, ok := counts[key]; !ok {
		counts[key] = 0
	}
	return counts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
