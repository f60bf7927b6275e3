package testutils

import (
	"fmt"
	"sync/atomic"

	"voice-sales-backend/internal/database/models"

	"gorm.io/datatypes"
)

var phoneSeq atomic.Int64

// nextPhone returns a phone number that is unique within the test process
func nextPhone() string {
	return fmt.Sprintf("+1555%07d", phoneSeq.Add(1))
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		Name:     "Maria Lopez",
		Phone:    nextPhone(),
		Email:    "maria@casamaria.test",
		Company:  "Casa Maria",
		Industry: "restaurant",
		Status:   models.LeadStatusNew,
	}
}

// WithPhone sets a custom phone number for the lead
func (f *LeadFactory) WithPhone(phone string) *models.Lead {
	lead := f.Create()
	lead.Phone = phone
	return lead
}

// WithIndustry sets a custom industry for the lead
func (f *LeadFactory) WithIndustry(industry string) *models.Lead {
	lead := f.Create()
	lead.Industry = industry
	return lead
}

// WithStatus sets a custom funnel status and score for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus, score int) *models.Lead {
	lead := f.Create()
	lead.Status = status
	lead.Score = score
	return lead
}

// CallFactory provides methods to create test Call data
type CallFactory struct{}

// NewCallFactory creates a new CallFactory
func NewCallFactory() *CallFactory {
	return &CallFactory{}
}

// ForLead creates an initiated test Call for a lead
func (f *CallFactory) ForLead(leadID uint) *models.Call {
	return &models.Call{
		LeadID: leadID,
		Status: models.CallStatusInitiated,
	}
}

// WithStatus creates a test Call for a lead in the given status
func (f *CallFactory) WithStatus(leadID uint, status models.CallStatus) *models.Call {
	call := f.ForLead(leadID)
	call.Status = status
	return call
}

// WithSession creates a test Call for a lead with a telephony session id
func (f *CallFactory) WithSession(leadID uint, status models.CallStatus, sessionID string) *models.Call {
	call := f.WithStatus(leadID, status)
	call.SessionID = &sessionID
	return call
}

// PlaybookFactory provides methods to create test Playbook data
type PlaybookFactory struct{}

// NewPlaybookFactory creates a new PlaybookFactory
func NewPlaybookFactory() *PlaybookFactory {
	return &PlaybookFactory{}
}

// Create creates a test restaurant Playbook
func (f *PlaybookFactory) Create() *models.Playbook {
	return f.WithIndustry("restaurant")
}

// WithIndustry creates a test Playbook for the given industry
func (f *PlaybookFactory) WithIndustry(industry string) *models.Playbook {
	return &models.Playbook{
		Industry:          industry,
		OpeningScript:     "Hi {lead_name}, this is {agent_name}. I help businesses like {company} never miss a customer call.",
		PainPoints:        datatypes.JSONSlice[string]{"Missing calls during busy hours", "High staff costs"},
		ValuePropositions: datatypes.JSONSlice[string]{"24/7 call answering", "Automated reservations"},
		ObjectionResponses: datatypes.NewJSONType(map[string]string{
			"too_expensive": "Most customers recover the cost within the first month.",
		}),
		ClosingTechniques: datatypes.JSONSlice[string]{"Offer a free trial"},
		FollowUpTemplates: datatypes.NewJSONType(map[string]string{
			"appointment_email": "Hi {lead_name}, thanks for booking a demo for {company}. Talk soon, {agent_name}",
			"default_email":     "Hi {lead_name}, thanks for speaking with {agent_name} today.",
			"default_sms":       "Thanks {lead_name}! - {agent_name}",
		}),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Lead     *LeadFactory
	Call     *CallFactory
	Playbook *PlaybookFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Lead:     NewLeadFactory(),
		Call:     NewCallFactory(),
		Playbook: NewPlaybookFactory(),
	}
}
