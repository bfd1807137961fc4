package notification

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_EmptyRecipient(t *testing.T) {
	s := NewSMTPSender("localhost", "2525", "", "", "noreply@akcart.test")

	err := s.Send(context.Background(), "", "subject", "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestSMTPSender_UnreachableRelay(t *testing.T) {
	// Port 1 is never an SMTP relay; the dial failure must surface as a
	// delivery error.
	s := NewSMTPSender("127.0.0.1", "1", "", "", "noreply@akcart.test")

	err := s.Send(context.Background(), "alice@example.com", "subject", "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestLogSender(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewLogSender(log)

	assert.NoError(t, s.Send(context.Background(), "alice@example.com", "subject", "body"))
}
