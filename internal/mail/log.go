package mail

import (
	"context"
	"log/slog"
)

// LogMailer writes messages to the log instead of delivering them. Used when
// no email API key is configured, so local setups still show verification
// links.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("email (log only)", "to", msg.To, "subject", msg.Subject, "text", msg.Text)
	return nil
}
