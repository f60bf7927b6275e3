// Package notify delivers follow-up messages by email.
package notify

import (
	"context"
	"fmt"
	"time"

	apperrors "voice-sales-backend/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/notify_mocks.go -package=mocks

// Mailer sends plain text email
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMTPConfig holds the SMTP server settings
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// SMTPMailer implements Mailer using a direct SMTP connection via go-mail
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

// Configured reports whether an SMTP host and sender address are set
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.FromEmail != ""
}

// SendEmail implements Mailer
func (m *SMTPMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if !m.Configured() {
		return apperrors.ErrProviderNotConfigured
	}

	msg, err := m.newMessage(to, subject, body)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) newMessage(to, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}
