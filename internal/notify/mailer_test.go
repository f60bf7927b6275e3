package notify

import (
	"bytes"
	"context"
	"testing"

	apperrors "voice-sales-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_NotConfigured(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{})
	assert.False(t, m.Configured())

	err := m.SendEmail(context.Background(), "maria@casamaria.test", "Hi", "Body")
	assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
}

func TestSMTPMailer_NewMessage(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", FromEmail: "sales@example.test", FromName: "Sales Team"})
	require.True(t, m.Configured())

	msg, err := m.newMessage("maria@casamaria.test", "Following up", "Thanks for your time")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Following up")
	assert.Contains(t, raw, "maria@casamaria.test")
	assert.Contains(t, raw, "sales@example.test")
	assert.Contains(t, raw, "Thanks for your time")
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", FromEmail: "sales@example.test"})

	_, err := m.newMessage("not an address", "Hi", "Body")
	assert.Error(t, err)
}
