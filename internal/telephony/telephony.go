// Package telephony places outbound calls and sends SMS through a telephony provider.
package telephony

import (
	"context"
)

//go:generate mockgen -source=telephony.go -destination=../mocks/telephony_mocks.go -package=mocks

// DialRequest describes an outbound call to place
type DialRequest struct {
	CallID uint
	To     string
	// VoiceURL is fetched by the provider when the callee answers
	VoiceURL string
	// StatusURL receives asynchronous call status events
	StatusURL string
	Bulk      bool
}

// DialResult is the provider's handle for a placed call
type DialResult struct {
	SessionID string
	Status    string
}

// Dialer places outbound calls
type Dialer interface {
	Dial(ctx context.Context, req DialRequest) (DialResult, error)
}

// SMSSender delivers text messages
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Provider is a telephony backend that can both dial and text
type Provider interface {
	Dialer
	SMSSender
}
