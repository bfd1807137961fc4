package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
)

// ── SMTP Adapter ──────────────────────────────────────────────────────────────

type smtpSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender creates a Sender that delivers mail through a plain SMTP relay.
func NewSMTPSender(host, port, username, password, from string) Sender {
	return &smtpSender{host: host, port: port, username: username, password: password, from: from}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("%w: recipient address is empty", ErrDeliveryFailed)
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// ── Log Adapter ───────────────────────────────────────────────────────────────
// Used in local development when no SMTP relay is configured.

type logSender struct {
	log *logrus.Logger
}

// NewLogSender creates a Sender that writes the message to the application log
// instead of delivering it.
func NewLogSender(log *logrus.Logger) Sender {
	return &logSender{log: log}
}

func (s *logSender) Send(ctx context.Context, to, subject, body string) error {
	s.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("email (not delivered, log sender active)")
	s.log.Debug(body)
	return nil
}
