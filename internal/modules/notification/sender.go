package notification

import (
	"context"
	"errors"
)

// ErrDeliveryFailed wraps transport failures from the underlying mail provider.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Sender is the provider-agnostic interface every mail adapter must implement.
// To add a new provider (e.g., SES, SendGrid), implement this interface.
type Sender interface {
	// Send delivers a plain-text email to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
