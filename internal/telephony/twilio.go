package telephony

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// TwilioConfig holds the credentials for the Twilio REST API
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	BaseURL    string
	Timeout    time.Duration
}

// TwilioClient places calls and sends SMS through the Twilio REST API
type TwilioClient struct {
	httpClient *resty.Client
	accountSID string
	fromNumber string
}

type twilioResource struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewTwilioClient creates a Twilio client. Requests are not retried: a retried
// call creation can ring the lead twice.
func NewTwilioClient(cfg TwilioConfig) *TwilioClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.twilio.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetHeader("Accept", "application/json")

	return &TwilioClient{
		httpClient: client,
		accountSID: cfg.AccountSID,
		fromNumber: cfg.FromNumber,
	}
}

// Dial creates an outbound call and subscribes to its status events
func (c *TwilioClient) Dial(ctx context.Context, req DialRequest) (DialResult, error) {
	form := url.Values{}
	form.Set("To", req.To)
	form.Set("From", c.fromNumber)
	form.Set("Url", req.VoiceURL)
	form.Set("Method", "POST")
	form.Set("Record", "true")
	if req.StatusURL != "" {
		form.Set("StatusCallback", req.StatusURL)
		form.Set("StatusCallbackMethod", "POST")
		for _, event := range []string{"initiated", "ringing", "answered", "completed"} {
			form.Add("StatusCallbackEvent", event)
		}
	}

	var created twilioResource
	if err := c.post(ctx, fmt.Sprintf("/2010-04-01/Accounts/%s/Calls.json", c.accountSID), form, &created); err != nil {
		return DialResult{}, err
	}
	if created.SID == "" {
		return DialResult{}, fmt.Errorf("twilio returned no call sid")
	}
	return DialResult{SessionID: created.SID, Status: created.Status}, nil
}

// SendSMS sends a text message from the configured number
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	var created twilioResource
	return c.post(ctx, fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.accountSID), form, &created)
}

func (c *TwilioClient) post(ctx context.Context, path string, form url.Values, result interface{}) error {
	var apiErr twilioError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("twilio error %d: %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("twilio returned status %d", resp.StatusCode())
	}
	return nil
}
