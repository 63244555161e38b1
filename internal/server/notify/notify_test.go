package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	got []Message
	err error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.got = append(r.got, msg)
	return r.err
}

func TestResetNotifier_SendsToAccountEmail(t *testing.T) {
	s := &recordingSender{}
	n := NewResetNotifier(s, "")

	require.NoError(t, n.SendTemporaryPassword(context.Background(), "a@x.com", "Ab3dE6gH"))

	require.Len(t, s.got, 1)
	assert.Equal(t, Message{
		To:      "a@x.com",
		Subject: "Password Reset",
		Body:    "Your New Password Is:\nAb3dE6gH",
	}, s.got[0])
}

func TestResetNotifier_Override(t *testing.T) {
	s := &recordingSender{}
	n := NewResetNotifier(s, "ops@x.com")

	require.NoError(t, n.SendTemporaryPassword(context.Background(), "a@x.com", "pw"))
	assert.Equal(t, "ops@x.com", s.got[0].To)
}

func TestResetNotifier_WrapsSenderError(t *testing.T) {
	boom := errors.New("relay down")
	n := NewResetNotifier(&recordingSender{err: boom}, "")

	err := n.SendTemporaryPassword(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "send reset mail: relay down")
}
