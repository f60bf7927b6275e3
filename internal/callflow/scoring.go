package callflow

import (
	"voice-sales-backend/internal/database/models"
)

// ScoreEffect is the lead mutation associated with a call outcome
type ScoreEffect struct {
	Status models.LeadStatus
	Delta  int
}

var outcomeEffects = map[models.CallOutcome]ScoreEffect{
	models.CallOutcomeAppointment:   {Status: models.LeadStatusQualified, Delta: 30},
	models.CallOutcomeInterested:    {Status: models.LeadStatusContacted, Delta: 15},
	models.CallOutcomeCallback:      {Status: models.LeadStatusContacted, Delta: 10},
	models.CallOutcomeNotInterested: {Status: models.LeadStatusLost, Delta: -5},
}

// funnelRank orders the active funnel statuses. Lost is handled separately.
var funnelRank = map[models.LeadStatus]int{
	models.LeadStatusNew:       0,
	models.LeadStatusContacted: 1,
	models.LeadStatusQualified: 2,
	models.LeadStatusConverted: 3,
}

// EffectFor returns the lead mutation for an outcome
func EffectFor(outcome models.CallOutcome) (ScoreEffect, bool) {
	effect, ok := outcomeEffects[outcome]
	return effect, ok
}

// ScoreResult describes the lead state after the scoring policy ran
type ScoreResult struct {
	PreviousStatus models.LeadStatus `json:"previous_status"`
	Status         models.LeadStatus `json:"status"`
	PreviousScore  int               `json:"previous_score"`
	Score          int               `json:"score"`
	Delta          int               `json:"delta"`
	// StatusConflict is set when the outcome pointed to an earlier funnel stage.
	// The status is left unchanged; the score delta still applies.
	StatusConflict bool              `json:"status_conflict"`
	RejectedStatus models.LeadStatus `json:"rejected_status,omitempty"`
}

// Score applies the outcome policy to a lead's status and score. A nil outcome
// leaves the lead unchanged.
func Score(status models.LeadStatus, score int, outcome *models.CallOutcome) ScoreResult {
	result := ScoreResult{
		PreviousStatus: status,
		Status:         status,
		PreviousScore:  score,
		Score:          score,
	}
	if outcome == nil {
		return result
	}
	effect, ok := outcomeEffects[*outcome]
	if !ok {
		return result
	}

	result.Delta = effect.Delta
	result.Score = score + effect.Delta

	if AllowsStatusChange(status, effect.Status) {
		result.Status = effect.Status
	} else {
		result.StatusConflict = true
		result.RejectedStatus = effect.Status
	}
	return result
}

// AllowsStatusChange reports whether the funnel may move from one lead status to another
// without regressing. Lost is reachable only before qualification, and a lost lead may be
// re-opened by any active status.
func AllowsStatusChange(from, to models.LeadStatus) bool {
	if from == to {
		return true
	}
	if to == models.LeadStatusLost {
		return from == models.LeadStatusNew || from == models.LeadStatusContacted
	}
	if from == models.LeadStatusLost {
		return true
	}
	fromRank, ok := funnelRank[from]
	if !ok {
		return false
	}
	toRank, ok := funnelRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}
