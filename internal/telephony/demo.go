package telephony

import (
	"context"
	"fmt"

	"voice-sales-backend/internal/logger"
)

// DemoProvider simulates a telephony provider without network access.
// Session ids are derived from the call id.
type DemoProvider struct{}

// NewDemoProvider creates a demo provider
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

// Dial returns a synthetic session id for the call
func (p *DemoProvider) Dial(ctx context.Context, req DialRequest) (DialResult, error) {
	prefix := "demo_call_"
	if req.Bulk {
		prefix = "demo_bulk_call_"
	}
	result := DialResult{
		SessionID: fmt.Sprintf("%s%d", prefix, req.CallID),
		Status:    "in-progress",
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id":    req.CallID,
		"session_id": result.SessionID,
	}).Info("demo call placed")
	return result, nil
}

// SendSMS logs the message instead of sending it
func (p *DemoProvider) SendSMS(ctx context.Context, to, body string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":     to,
		"length": len(body),
	}).Info("demo sms sent")
	return nil
}
