package models

import (
	"time"
)

// Call represents one outbound contact attempt tied to a lead
type Call struct {
	BaseModel
	LeadID         uint         `json:"lead_id" gorm:"not null;index"`
	SessionID      *string      `json:"session_id" gorm:"size:100;uniqueIndex"`
	Status         CallStatus   `json:"status" gorm:"type:varchar(20);not null;default:'initiated';index"`
	Duration       int          `json:"duration" gorm:"not null;default:0"`
	RecordingURL   *string      `json:"recording_url" gorm:"size:500"`
	Transcript     string       `json:"transcript" gorm:"type:text"`
	SentimentScore float64      `json:"sentiment_score" gorm:"not null;default:0"`
	Outcome        *CallOutcome `json:"outcome" gorm:"type:varchar(50);index"`
	Notes          string       `json:"notes" gorm:"type:text"`
	StartedAt      *time.Time   `json:"started_at"`
	CompletedAt    *time.Time   `json:"completed_at"`
	// DialClaimedAt is set by the worker that won the right to dial a queued call
	DialClaimedAt *time.Time `json:"-"`

	// Relationships
	Lead *Lead `json:"lead,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Call
func (Call) TableName() string {
	return "calls"
}

// SessionIDValue returns the external session id or an empty string
func (c *Call) SessionIDValue() string {
	if c.SessionID == nil {
		return ""
	}
	return *c.SessionID
}
