// Package mailer delivers rendered notification emails through a provider.
package mailer

import (
	"context"
	"errors"

	"github.com/asionix/mailroom/internal/models"
)

// Sender is the delivery channel for outbound notification emails.
// Implementations exist for the Resend HTTP API and plain SMTP; the rest of
// the service does not care which one is configured.
type Sender interface {
	// Send delivers the message and returns the provider message ID.
	// A single attempt is made; a failed send is not retried.
	Send(ctx context.Context, msg *models.Message) (string, error)
}

// sender errors
var (
	ErrNoRecipient = errors.New("message has no recipient")
	ErrNoSubject   = errors.New("message has no subject")
)

// check validates the parts every provider requires.
func check(msg *models.Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	if msg.Subject == "" {
		return ErrNoSubject
	}
	return nil
}
