package models

// LeadStatus defines the position of a lead in the sales funnel
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// LeadStatuses lists every lead status in funnel order
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
	LeadStatusLost,
}

// CallStatus defines the lifecycle states of a call
type CallStatus string

const (
	CallStatusInitiated  CallStatus = "initiated"
	CallStatusQueued     CallStatus = "queued"
	CallStatusInProgress CallStatus = "in_progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
)

// CallStatuses lists every call status
var CallStatuses = []CallStatus{
	CallStatusInitiated,
	CallStatusQueued,
	CallStatusInProgress,
	CallStatusCompleted,
	CallStatusFailed,
}

// CallOutcome defines the terminal classification of a completed call
type CallOutcome string

const (
	CallOutcomeAppointment   CallOutcome = "appointment"
	CallOutcomeInterested    CallOutcome = "interested"
	CallOutcomeCallback      CallOutcome = "callback"
	CallOutcomeNotInterested CallOutcome = "not_interested"
)

// CallOutcomes lists every call outcome
var CallOutcomes = []CallOutcome{
	CallOutcomeAppointment,
	CallOutcomeInterested,
	CallOutcomeCallback,
	CallOutcomeNotInterested,
}

// Channel defines the delivery channel of a follow-up message
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// IsValid checks if the CallStatus is valid
func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusInitiated, CallStatusQueued, CallStatusInProgress, CallStatusCompleted, CallStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave the status
func (s CallStatus) IsTerminal() bool {
	return s == CallStatusCompleted || s == CallStatusFailed
}

// IsValid checks if the CallOutcome is valid
func (o CallOutcome) IsValid() bool {
	switch o {
	case CallOutcomeAppointment, CallOutcomeInterested, CallOutcomeCallback, CallOutcomeNotInterested:
		return true
	}
	return false
}

// IsValid checks if the Channel is valid
func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS
}
