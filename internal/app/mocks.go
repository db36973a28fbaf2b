package app

import (
	"stockpulse_backend/internal/email"
	"stockpulse_backend/internal/logger"
)

// LoggingEmailProvider stands in for SMTP in development: it logs the
// message instead of delivering it. Token values are never logged.
type LoggingEmailProvider struct{}

func (p *LoggingEmailProvider) Send(e *email.Email) error {
	logger.Info("email (not sent, smtp disabled)", "to", e.To, "subject", e.Subject)
	return nil
}

func (p *LoggingEmailProvider) SendVerification(to, verifyURL string) error {
	logger.Info("verification email (not sent, smtp disabled)", "to", to)
	return nil
}

func (p *LoggingEmailProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("password reset email (not sent, smtp disabled)", "to", to)
	return nil
}

func (p *LoggingEmailProvider) Close() error { return nil }
