package dispatch

import (
	"context"
	"fmt"

	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"

	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
)

// QueuedCallDialer dials a call that was created in the queued status and fails it
// when dialing is given up
type QueuedCallDialer interface {
	DialQueued(ctx context.Context, callID uint) error
	FailQueued(ctx context.Context, callID uint, reason string) error
}

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	dialer  QueuedCallDialer
	limiter *rate.Limiter
	log     *logger.Logger
	// lastAttempt reports whether asynq will not retry the running task
	lastAttempt func(ctx context.Context) bool
}

func NewWorker(cfg Config, dialer QueuedCallDialer) (*Worker, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 5
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg.Queue): 1,
		},
	})

	w := newWorker(dialer, NewLimiter(cfg.DialsPerSecond))
	w.server = server
	w.mux.HandleFunc(TaskDialCall, w.handleDialCall)
	return w, nil
}

func newWorker(dialer QueuedCallDialer, limiter *rate.Limiter) *Worker {
	return &Worker{
		mux:     asynq.NewServeMux(),
		dialer:      dialer,
		limiter:     limiter,
		log:         logger.New().WithField("component", "dispatch-worker"),
		lastAttempt: isLastAttempt,
	}
}

func isLastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return false
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	return ok && retried >= maxRetry
}

// NewLimiter returns a token bucket allowing perSecond dials with a burst of one.
// A non-positive rate disables pacing.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

func (w *Worker) handleDialCall(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseDialCallPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	err = w.limiter.Wait(ctx)
	if err == nil {
		err = w.dialer.DialQueued(ctx, payload.CallID)
	}
	if err == nil {
		return nil
	}

	log := w.log.WithFields(map[string]interface{}{
		"call_id": payload.CallID,
		"error":   err.Error(),
	})
	if apperrors.IsNotFound(err) {
		log.Warn("queued dial dropped")
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if !w.lastAttempt(ctx) {
		log.Warn("queued dial failed, will retry")
		return err
	}

	// asynq archives the task after this attempt; the call must not stay queued
	reason := "Dial failed after retries: " + err.Error()
	if failErr := w.dialer.FailQueued(context.WithoutCancel(ctx), payload.CallID, reason); failErr != nil {
		log.Errorf("failed to mark call failed: %v", failErr)
	} else {
		log.Warn("queued dial given up, call failed")
	}
	return err
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Errorf("dispatch worker stopped: %v", err)
	}
}
