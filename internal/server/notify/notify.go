// Package notify delivers the temporary passwords produced by the
// forgot-password flow.
package notify

import (
	"context"
	"fmt"
)

// Message is a plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResetNotifier formats and sends temporary-password mails. When Override is
// set every mail goes there instead of to the account address.
type ResetNotifier struct {
	sender   Sender
	override string
}

func NewResetNotifier(sender Sender, override string) *ResetNotifier {
	return &ResetNotifier{sender: sender, override: override}
}

// SendTemporaryPassword mails password to the owner of email (or to the
// override recipient).
func (n *ResetNotifier) SendTemporaryPassword(ctx context.Context, email, password string) error {
	to := email
	if n.override != "" {
		to = n.override
	}

	err := n.sender.Send(ctx, Message{
		To:      to,
		Subject: "Password Reset",
		Body:    fmt.Sprintf("Your New Password Is:\n%s", password),
	})
	if err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}
