package callflow

import (
	"fmt"
	"strings"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
)

// transitions is the exhaustive table of allowed call status changes.
// Terminal statuses have no outgoing edges.
var transitions = map[models.CallStatus][]models.CallStatus{
	models.CallStatusInitiated:  {models.CallStatusInProgress, models.CallStatusFailed},
	models.CallStatusQueued:     {models.CallStatusInProgress, models.CallStatusFailed},
	models.CallStatusInProgress: {models.CallStatusCompleted, models.CallStatusFailed},
	models.CallStatusCompleted:  {},
	models.CallStatusFailed:     {},
}

// CanTransition reports whether a call may move from one status to another
func CanTransition(from, to models.CallStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns a ConflictError when it is not allowed
func Transition(from, to models.CallStatus) error {
	if !to.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	if !CanTransition(from, to) {
		return apperrors.NewConflictError("call", fmt.Sprintf("cannot transition from %s to %s", from, to))
	}
	return nil
}

// EventAction is the decision taken for an incoming telephony status event
type EventAction int

const (
	// EventApply means the transition must be persisted
	EventApply EventAction = iota
	// EventReplay means the call already holds the reported status; nothing changes
	EventReplay
	// EventIgnore means the provider status carries no lifecycle change (ringing, queued)
	EventIgnore
)

// providerStatuses maps telephony provider call statuses to call statuses.
// Statuses mapped to the empty string are informational only.
var providerStatuses = map[string]models.CallStatus{
	"initiated":   "",
	"queued":      "",
	"ringing":     "",
	"answered":    models.CallStatusInProgress,
	"in-progress": models.CallStatusInProgress,
	"in_progress": models.CallStatusInProgress,
	"completed":   models.CallStatusCompleted,
	"busy":        models.CallStatusFailed,
	"no-answer":   models.CallStatusFailed,
	"no_answer":   models.CallStatusFailed,
	"failed":      models.CallStatusFailed,
	"canceled":    models.CallStatusFailed,
	"cancelled":   models.CallStatusFailed,
}

// ParseProviderStatus maps a raw provider status onto a call status.
// An empty status with ok=true marks an informational event.
func ParseProviderStatus(raw string) (status models.CallStatus, ok bool) {
	status, ok = providerStatuses[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// DecideEvent decides how a telephony event reporting target applies to a call in current.
// Re-delivery of the status a call already holds is a replay; anything the
// transition table rejects is a conflict.
func DecideEvent(current, target models.CallStatus) (EventAction, error) {
	if target == "" {
		return EventIgnore, nil
	}
	if current == target {
		return EventReplay, nil
	}
	if err := Transition(current, target); err != nil {
		return EventApply, err
	}
	return EventApply, nil
}
