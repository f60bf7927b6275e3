package service

import (
	"context"
	"fmt"

	"voice-sales-backend/internal/dispatch"
	"voice-sales-backend/internal/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DialQueue schedules dials of queued calls on background workers
type DialQueue interface {
	EnqueueDial(ctx context.Context, callID uint) error
}

// BulkConfig holds the bulk dispatch settings
type BulkConfig struct {
	Concurrency int
	// DialsPerSecond paces inline dials; zero or less disables pacing
	DialsPerSecond float64
}

// BulkDispatchService fans out call creation over many leads
type BulkDispatchService struct {
	calls       *CallService
	queue       DialQueue
	concurrency int
	limiter     *rate.Limiter
}

// NewBulkDispatchService creates a bulk dispatcher. With a nil queue calls are dialed
// inline, otherwise dialing is left to the queue's workers.
func NewBulkDispatchService(calls *CallService, queue DialQueue, cfg BulkConfig) *BulkDispatchService {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 4
	}
	return &BulkDispatchService{
		calls:       calls,
		queue:       queue,
		concurrency: concurrency,
		limiter:     dispatch.NewLimiter(cfg.DialsPerSecond),
	}
}

// BulkDispatchRequest represents the request to call many leads
type BulkDispatchRequest struct {
	LeadIDs []uint `json:"lead_ids" validate:"required,min=1,max=500"`
}

// Bulk dispatch item statuses
const (
	BulkStatusQueued = "queued"
	BulkStatusError  = "error"
)

// BulkDispatchItem is the result for one lead
type BulkDispatchItem struct {
	LeadID  uint   `json:"lead_id"`
	CallID  *uint  `json:"call_id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BulkDispatchResult holds one item per requested lead, in request order
type BulkDispatchResult struct {
	Results     []BulkDispatchItem `json:"results"`
	TotalQueued int                `json:"total_queued"`
}

// Dispatch creates a call per lead. One lead's failure never affects the others.
func (s *BulkDispatchService) Dispatch(ctx context.Context, leadIDs []uint) (*BulkDispatchResult, error) {
	results := make([]BulkDispatchItem, len(leadIDs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, leadID := range leadIDs {
		g.Go(func() error {
			results[i] = s.dispatchOne(ctx, leadID)
			return nil
		})
	}
	_ = g.Wait()

	queued := 0
	for _, item := range results {
		if item.Status != BulkStatusError {
			queued++
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"requested": len(leadIDs),
		"queued":    queued,
		"inline":    s.queue == nil,
	}).Info("bulk dispatch finished")

	return &BulkDispatchResult{Results: results, TotalQueued: queued}, nil
}

func (s *BulkDispatchService) dispatchOne(ctx context.Context, leadID uint) BulkDispatchItem {
	item := BulkDispatchItem{LeadID: leadID}

	call, err := s.calls.Queue(ctx, leadID)
	if err != nil {
		item.Status = BulkStatusError
		item.Message = bulkErrorMessage(err)
		return item
	}
	callID := call.ID
	item.CallID = &callID

	if s.queue != nil {
		if err := s.queue.EnqueueDial(ctx, call.ID); err != nil {
			reason := fmt.Sprintf("Dispatch error: %v", err)
			if failErr := s.calls.FailQueued(ctx, call.ID, reason); failErr != nil {
				logger.WithContext(ctx).WithField("call_id", call.ID).Errorf("failed to mark call failed: %v", failErr)
			}
			item.Status = BulkStatusError
			item.Message = "failed to queue dial"
			return item
		}
		item.Status = BulkStatusQueued
		item.Message = "call queued"
		return item
	}

	if err := s.limiter.Wait(ctx); err != nil {
		if failErr := s.calls.FailQueued(ctx, call.ID, "Dispatch error: "+err.Error()); failErr != nil {
			logger.WithContext(ctx).WithField("call_id", call.ID).Errorf("failed to mark call failed: %v", failErr)
		}
		item.Status = BulkStatusError
		item.Message = "dispatch cancelled"
		return item
	}
	if err := s.calls.DialQueued(ctx, call.ID); err != nil {
		item.Status = BulkStatusError
		item.Message = bulkErrorMessage(err)
		return item
	}

	dialed, err := s.calls.GetByID(ctx, call.ID)
	if err != nil {
		item.Status = BulkStatusError
		item.Message = bulkErrorMessage(err)
		return item
	}
	item.Status = string(dialed.Status)
	item.Message = "call dialed"
	if dialed.Status.IsTerminal() {
		item.Status = BulkStatusError
		item.Message = "telephony dial failed"
	}
	return item
}

func bulkErrorMessage(err error) string {
	if isDomainError(err) {
		return err.Error()
	}
	return "internal error"
}
