package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_BuildMessage(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})

	m, err := s.buildMessage(Message{To: "a@x.com", Subject: "Password Reset", Body: "Your New Password Is:\nAb3dE6gH"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Password Reset")
	assert.Contains(t, raw, "<noreply@example.com>")
	assert.Contains(t, raw, "<a@x.com>")
	assert.Contains(t, raw, "Ab3dE6gH")
}

func TestSMTPSender_BuildMessage_InvalidAddresses(t *testing.T) {
	bad := NewSMTPSender(SMTPConfig{From: "not an address"})
	_, err := bad.buildMessage(Message{To: "a@x.com"})
	assert.ErrorContains(t, err, "invalid sender")

	good := NewSMTPSender(SMTPConfig{From: "noreply@example.com"})
	_, err = good.buildMessage(Message{To: "nope"})
	assert.ErrorContains(t, err, "invalid recipient")
}

func TestSMTPSender_Send_InvalidRecipientFailsBeforeDial(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1, From: "noreply@example.com"})
	err := s.Send(context.Background(), Message{To: "nope"})
	assert.ErrorContains(t, err, "invalid recipient")
}
