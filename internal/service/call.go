package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-sales-backend/internal/callflow"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/telephony"
)

// CallConfig holds the call orchestration settings
type CallConfig struct {
	// PublicBaseURL is the externally reachable base for telephony callbacks
	PublicBaseURL string
	// RequirePlaybook rejects calls to leads whose industry has no playbook
	RequirePlaybook bool
}

// dialClaimTTL is how long a dial claim blocks other workers. It outlasts the dial
// task timeout, so only a claim left by a crashed worker expires.
const dialClaimTTL = 5 * time.Minute

// CallService drives calls through their lifecycle and applies the scoring policy
type CallService struct {
	store  *repository.Store
	dialer telephony.Dialer
	cfg    CallConfig
	now    func() time.Time
}

// NewCallService creates a new call service
func NewCallService(store *repository.Store, dialer telephony.Dialer, cfg CallConfig) *CallService {
	return &CallService{
		store:  store,
		dialer: dialer,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TelephonyEvent is a call status report from the telephony provider
type TelephonyEvent struct {
	SessionID    string
	Status       string
	Duration     *int
	RecordingURL *string
}

// EventResult is the call after a telephony event. Applied is false for replays and
// informational statuses.
type EventResult struct {
	Call    *models.Call `json:"call"`
	Applied bool         `json:"applied"`
}

// EndCallRequest represents the explicit end-call action
type EndCallRequest struct {
	Outcome        models.CallOutcome `json:"outcome" validate:"required"`
	Notes          string             `json:"notes,omitempty"`
	Transcript     string             `json:"transcript,omitempty"`
	SentimentScore *float64           `json:"sentiment_score,omitempty"`
	Duration       *int               `json:"duration,omitempty"`
}

// EndCallResult is the completed call, its scored lead and the policy decision
type EndCallResult struct {
	Call    *models.Call         `json:"call"`
	Lead    *models.Lead         `json:"lead"`
	Scoring callflow.ScoreResult `json:"scoring"`
}

// CallListResponse represents a paginated list of calls
type CallListResponse struct {
	Calls       []models.Call `json:"calls"`
	Total       int64         `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// Initiate creates a call for a lead and dials it right away
func (s *CallService) Initiate(ctx context.Context, leadID uint) (*models.Call, error) {
	call, lead, err := s.create(ctx, leadID, models.CallStatusInitiated)
	if err != nil {
		return nil, err
	}
	return s.dial(ctx, call, lead.Phone, false)
}

// Queue creates a queued call for bulk dispatch without dialing it
func (s *CallService) Queue(ctx context.Context, leadID uint) (*models.Call, error) {
	call, _, err := s.create(ctx, leadID, models.CallStatusQueued)
	return call, err
}

// DialQueued dials a queued call. The call is claimed before the provider is contacted,
// so of two deliveries of the same task only one dials; the other gets ErrDialInProgress
// while the claim is live. Calls that already left the queued status are skipped.
func (s *CallService) DialQueued(ctx context.Context, callID uint) error {
	call, err := s.store.Calls.GetWithLead(ctx, callID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrCallNotFound
		}
		return err
	}
	if call.Status != models.CallStatusQueued {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"call_id": call.ID,
			"status":  call.Status,
		}).Debug("skipping dial for call that is no longer queued")
		return nil
	}
	if call.Lead == nil {
		return apperrors.ErrLeadNotFound
	}

	now := s.now()
	claimed, err := s.store.Calls.ClaimDial(ctx, call.ID, now, now.Add(-dialClaimTTL))
	if err != nil {
		return fmt.Errorf("failed to claim call: %w", err)
	}
	if !claimed {
		current, err := s.store.Calls.GetByID(ctx, call.ID)
		if err == nil && current.Status != models.CallStatusQueued {
			return nil
		}
		return apperrors.ErrDialInProgress
	}

	if _, err := s.dial(ctx, call, call.Lead.Phone, true); err != nil {
		// the dial result was not recorded; do not leave a claimed call queued
		if failErr := s.FailQueued(ctx, call.ID, "Dispatch error: "+err.Error()); failErr != nil {
			logger.WithContext(ctx).WithField("call_id", call.ID).Errorf("failed to mark call failed: %v", failErr)
		}
		return err
	}
	return nil
}

// FailQueued moves a queued call to failed with the given reason. A call that already
// left the queued status is left untouched.
func (s *CallService) FailQueued(ctx context.Context, callID uint, reason string) error {
	ctx = context.WithoutCancel(ctx)
	return s.store.InTransaction(ctx, func(tx *repository.Store) error {
		call, err := tx.Calls.GetByIDForUpdate(ctx, callID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrCallNotFound
			}
			return err
		}
		if call.Status != models.CallStatusQueued {
			return nil
		}
		return tx.Calls.CompareAndSwap(ctx, call.ID, call.Status, map[string]interface{}{
			"status":       models.CallStatusFailed,
			"completed_at": s.now(),
			"notes":        appendLine(call.Notes, reason),
		})
	})
}

// create inserts a call for a lead after checking the lead, its playbook and that
// it has no other active call. The lead row stays locked until the insert commits.
func (s *CallService) create(ctx context.Context, leadID uint, status models.CallStatus) (*models.Call, *models.Lead, error) {
	var (
		call *models.Call
		lead *models.Lead
	)
	err := s.store.InTransaction(ctx, func(tx *repository.Store) error {
		var err error
		lead, err = tx.Leads.GetByIDForUpdate(ctx, leadID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrLeadNotFound
			}
			return err
		}

		if s.cfg.RequirePlaybook {
			exists, err := tx.Playbooks.ExistsForIndustry(ctx, lead.Industry)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.ErrPlaybookMissing
			}
		}

		active, err := tx.Calls.HasActiveCall(ctx, lead.ID)
		if err != nil {
			return err
		}
		if active {
			return apperrors.ErrActiveCallExists
		}

		call = &models.Call{LeadID: lead.ID, Status: status}
		return tx.Calls.Create(ctx, call)
	})
	if err != nil {
		if isDomainError(err) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to create call: %w", err)
	}
	return call, lead, nil
}

// dial asks the telephony provider for a session outside any transaction and then
// records the result in a separate one.
func (s *CallService) dial(ctx context.Context, call *models.Call, to string, bulk bool) (*models.Call, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id": call.ID,
		"lead_id": call.LeadID,
	})

	result, dialErr := s.dialer.Dial(ctx, telephony.DialRequest{
		CallID:    call.ID,
		To:        to,
		VoiceURL:  s.callbackURL(fmt.Sprintf("/api/v1/voice/webhook/%d", call.ID)),
		StatusURL: s.callbackURL("/api/v1/voice/status"),
		Bulk:      bulk,
	})
	if dialErr == nil && strings.TrimSpace(result.SessionID) == "" {
		dialErr = fmt.Errorf("provider returned no session id")
	}

	// the result must be recorded even if the caller went away while dialing
	recordCtx := context.WithoutCancel(ctx)
	err := s.store.InTransaction(recordCtx, func(tx *repository.Store) error {
		current, err := tx.Calls.GetByIDForUpdate(recordCtx, call.ID)
		if err != nil {
			return err
		}

		now := s.now()
		if dialErr != nil {
			if err := callflow.Transition(current.Status, models.CallStatusFailed); err != nil {
				return err
			}
			return tx.Calls.CompareAndSwap(recordCtx, current.ID, current.Status, map[string]interface{}{
				"status":       models.CallStatusFailed,
				"completed_at": now,
				"notes":        appendLine(current.Notes, "Telephony error: "+dialErr.Error()),
			})
		}

		if err := callflow.Transition(current.Status, models.CallStatusInProgress); err != nil {
			return err
		}
		return tx.Calls.CompareAndSwap(recordCtx, current.ID, current.Status, map[string]interface{}{
			"status":     models.CallStatusInProgress,
			"session_id": result.SessionID,
			"started_at": now,
		})
	})
	if err != nil {
		log.Errorf("failed to record dial result: %v", err)
		return nil, err
	}

	if dialErr != nil {
		log.WithField("error", dialErr.Error()).Warn("telephony dial failed")
	} else {
		log.WithField("session_id", result.SessionID).Info("call in progress")
	}

	return s.store.Calls.GetByID(recordCtx, call.ID)
}

// ApplyTelephonyEvent applies a provider status event to the call owning the session.
// Re-delivered events are acknowledged without changing the call.
func (s *CallService) ApplyTelephonyEvent(ctx context.Context, event TelephonyEvent) (*EventResult, error) {
	if strings.TrimSpace(event.SessionID) == "" {
		return nil, apperrors.NewValidationError("session_id", "is required")
	}
	target, ok := callflow.ParseProviderStatus(event.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown telephony status %q", event.Status))
	}
	if event.Duration != nil && *event.Duration < 0 {
		return nil, apperrors.NewValidationError("duration", "must not be negative")
	}

	var result EventResult
	err := s.store.InTransaction(ctx, func(tx *repository.Store) error {
		call, err := tx.Calls.GetBySessionIDForUpdate(ctx, event.SessionID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrSessionNotFound
			}
			return err
		}

		action, err := callflow.DecideEvent(call.Status, target)
		if err != nil {
			return err
		}
		if action != callflow.EventApply {
			// a recording that arrives after the call ended is attached once
			if action == callflow.EventReplay && call.RecordingURL == nil && nonEmpty(event.RecordingURL) {
				if err := tx.Calls.UpdateFields(ctx, call.ID, map[string]interface{}{"recording_url": *event.RecordingURL}); err != nil {
					return err
				}
				call.RecordingURL = event.RecordingURL
			}
			result = EventResult{Call: call, Applied: false}
			return nil
		}

		now := s.now()
		updates := map[string]interface{}{"status": target}
		switch target {
		case models.CallStatusInProgress:
			if call.StartedAt == nil {
				updates["started_at"] = now
			}
		case models.CallStatusCompleted:
			updates["completed_at"] = now
			if event.Duration != nil {
				updates["duration"] = *event.Duration
			} else {
				updates["duration"] = elapsedSeconds(call.StartedAt, now)
			}
		case models.CallStatusFailed:
			updates["completed_at"] = now
			duration := 0
			if event.Duration != nil {
				duration = *event.Duration
			}
			updates["duration"] = duration
			updates["notes"] = appendLine(call.Notes, "Call failed: "+strings.TrimSpace(event.Status))
		}
		if nonEmpty(event.RecordingURL) {
			updates["recording_url"] = *event.RecordingURL
		}

		if err := tx.Calls.CompareAndSwap(ctx, call.ID, call.Status, updates); err != nil {
			return err
		}
		if target == models.CallStatusCompleted {
			// natural termination carries no outcome, so the policy leaves the lead as is
			if _, err := applyScoring(ctx, tx, call.LeadID, call.Outcome); err != nil {
				return err
			}
		}

		updated, err := tx.Calls.GetByID(ctx, call.ID)
		if err != nil {
			return err
		}
		result = EventResult{Call: updated, Applied: true}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to apply telephony event: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id":    result.Call.ID,
		"session_id": event.SessionID,
		"status":     result.Call.Status,
		"applied":    result.Applied,
	}).Info("telephony event processed")
	return &result, nil
}

// EndCall completes an in-progress call with an outcome and scores its lead in the
// same transaction
func (s *CallService) EndCall(ctx context.Context, callID uint, req *EndCallRequest) (*EndCallResult, error) {
	if !req.Outcome.IsValid() {
		return nil, apperrors.ErrInvalidOutcome
	}
	if req.SentimentScore != nil && (*req.SentimentScore < -1 || *req.SentimentScore > 1) {
		return nil, apperrors.ErrInvalidSentiment
	}
	if req.Duration != nil && *req.Duration < 0 {
		return nil, apperrors.NewValidationError("duration", "must not be negative")
	}

	var result EndCallResult
	err := s.store.InTransaction(ctx, func(tx *repository.Store) error {
		call, err := tx.Calls.GetByIDForUpdate(ctx, callID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrCallNotFound
			}
			return err
		}
		if call.Status.IsTerminal() {
			return apperrors.ErrCallTerminal
		}
		if err := callflow.Transition(call.Status, models.CallStatusCompleted); err != nil {
			return err
		}

		now := s.now()
		duration := elapsedSeconds(call.StartedAt, now)
		if req.Duration != nil {
			duration = *req.Duration
		}
		outcome := req.Outcome
		updates := map[string]interface{}{
			"status":       models.CallStatusCompleted,
			"outcome":      outcome,
			"completed_at": now,
			"duration":     duration,
			"notes":        appendLine(call.Notes, req.Notes),
			"transcript":   appendLine(call.Transcript, req.Transcript),
		}
		if req.SentimentScore != nil {
			updates["sentiment_score"] = *req.SentimentScore
		}
		if err := tx.Calls.CompareAndSwap(ctx, call.ID, call.Status, updates); err != nil {
			return err
		}

		scoring, err := applyScoring(ctx, tx, call.LeadID, &outcome)
		if err != nil {
			return err
		}

		updated, err := tx.Calls.GetByID(ctx, call.ID)
		if err != nil {
			return err
		}
		lead, err := tx.Leads.GetByID(ctx, call.LeadID)
		if err != nil {
			return err
		}
		result = EndCallResult{Call: updated, Lead: lead, Scoring: scoring}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to end call: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id": result.Call.ID,
		"lead_id": result.Lead.ID,
		"outcome": req.Outcome,
		"delta":   result.Scoring.Delta,
	})
	if result.Scoring.StatusConflict {
		log.WithFields(map[string]interface{}{
			"lead_status":     result.Scoring.Status,
			"rejected_status": result.Scoring.RejectedStatus,
		}).Warn("outcome would regress lead status, status kept")
	} else {
		log.Info("call completed")
	}
	return &result, nil
}

// GetByID retrieves a call with its lead
func (s *CallService) GetByID(ctx context.Context, id uint) (*models.Call, error) {
	call, err := s.store.Calls.GetWithLead(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	return call, nil
}

// List retrieves calls, optionally for one lead, newest first
func (s *CallService) List(ctx context.Context, leadID *uint, page, perPage int) (*CallListResponse, error) {
	page, perPage, limit, offset := paginate(page, perPage)
	calls, total, err := s.store.Calls.List(ctx, leadID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	if calls == nil {
		calls = []models.Call{}
	}
	return &CallListResponse{
		Calls:       calls,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	}, nil
}

func (s *CallService) callbackURL(path string) string {
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + path
}

// applyScoring runs the scoring policy for a lead inside tx and stores the result
func applyScoring(ctx context.Context, tx *repository.Store, leadID uint, outcome *models.CallOutcome) (callflow.ScoreResult, error) {
	lead, err := tx.Leads.GetByIDForUpdate(ctx, leadID)
	if err != nil {
		if repository.IsNotFound(err) {
			return callflow.ScoreResult{}, apperrors.ErrLeadNotFound
		}
		return callflow.ScoreResult{}, err
	}

	result := callflow.Score(lead.Status, lead.Score, outcome)
	if result.Status == result.PreviousStatus && result.Score == result.PreviousScore {
		return result, nil
	}
	return result, tx.Leads.ApplyScore(ctx, lead.ID, result.Status, result.Score)
}

func elapsedSeconds(start *time.Time, end time.Time) int {
	if start == nil {
		return 0
	}
	seconds := int(end.Sub(*start).Seconds())
	if seconds < 0 {
		return 0
	}
	return seconds
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// isDomainError reports whether err is one of the typed application errors that may be
// shown to callers as is
func isDomainError(err error) bool {
	return apperrors.IsNotFound(err) ||
		apperrors.IsAlreadyExists(err) ||
		apperrors.IsValidation(err) ||
		apperrors.IsConflict(err) ||
		apperrors.IsCollaboratorUnavailable(err)
}
