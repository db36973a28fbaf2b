package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// TTL strings rendered into the templates, e.g. "24 hours".
	VerifyTTL string
	ResetTTL  string
}

// SMTPProvider sends mail over SMTP via gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *TemplateManager
}

func NewSMTPProvider(config *SMTPConfig, renderer *TemplateManager) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		m.SetAddressHeader("From", from, p.config.FromName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %v: %w", email.To, err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to, verifyURL string) error {
	html, err := p.renderer.Render("verification", TemplateData{
		"VerifyURL": verifyURL,
		"TTL":       p.config.VerifyTTL,
	})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your StockPulse email",
		HTMLBody: html,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	html, err := p.renderer.Render("password_reset", TemplateData{
		"ResetURL": resetURL,
		"TTL":      p.config.ResetTTL,
	})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Reset your StockPulse password",
		HTMLBody: html,
	})
}

func (p *SMTPProvider) Close() error {
	// gomail dials per message; nothing to release.
	return nil
}
