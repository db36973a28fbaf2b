package email

// Provider sends transactional mail. The auth service only ever calls it
// fire-and-forget; delivery failures are logged, never surfaced to the
// HTTP caller.
type Provider interface {
	// Send delivers a fully built message.
	Send(email *Email) error

	// SendVerification sends the email-verification link.
	SendVerification(to, verifyURL string) error

	// SendPasswordReset sends the password-reset link.
	SendPasswordReset(to, resetURL string) error

	// Close releases provider resources.
	Close() error
}
