package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// LogSender is a fallback sender that logs emails instead of sending them.
// Used in development when no transport is configured.
type LogSender struct {
	Logger *slog.Logger
}

// NewLogSender creates a new log-only sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{Logger: logger}
}

// Verify always succeeds; there is nothing to connect to.
func (l *LogSender) Verify(ctx context.Context) error {
	return nil
}

// Send logs the email message and returns a fake message ID.
func (l *LogSender) Send(ctx context.Context, m *Message) (string, error) {
	fakeID := uuid.New().String()
	l.Logger.Info("email logged (not sent)",
		"provider", "log",
		"from", m.From,
		"to", strings.Join(m.To, ", "),
		"reply_to", m.ReplyTo,
		"subject", m.Subject,
		"html_length", len(m.HTMLBody),
		"text_length", len(m.TextBody),
	)
	if m.TextBody != "" {
		l.Logger.Debug("email text body", "text", m.TextBody)
	}
	return fmt.Sprintf("log-%s", fakeID), nil
}
