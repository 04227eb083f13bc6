package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/ecomly/ecomly-api/internal/metrics"
)

// Mailer sends transactional notification emails. Delivery failures are the
// caller's concern only as far as logging; no business flow depends on an
// email having been sent.
type Mailer interface {
	SendWelcome(to, name string) error
	SendOrderConfirmation(to, name, orderID string, total int64) error
	SendPasswordReset(to, name, token string) error
	SendEmailVerification(to, name, token string) error
}

// SMTPConfig holds mail server settings. SiteURL is the public frontend
// base that emailed action links point at.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SiteURL  string
}

// SMTPMailer implements Mailer over a plain SMTP dialer.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	siteURL string
	log     zerolog.Logger
}

// NewSMTPMailer creates a mailer for the given server.
func NewSMTPMailer(cfg SMTPConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		siteURL: cfg.SiteURL,
		log:     log,
	}
}

// SendWelcome greets a freshly registered account.
func (m *SMTPMailer) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<h2>Welcome, %s!</h2><p>Your account has been created. You can sign in right away and start browsing.</p>",
		name,
	)
	return m.send("welcome", to, "Welcome to Ecomly", body)
}

// SendOrderConfirmation confirms a placed order.
func (m *SMTPMailer) SendOrderConfirmation(to, name, orderID string, total int64) error {
	body := fmt.Sprintf(
		"<h2>Thanks for your order, %s!</h2><p>Order <strong>%s</strong> was placed successfully. Total: %d.%02d</p>",
		name, orderID, total/100, total%100,
	)
	return m.send("order_confirmation", to, "Your Ecomly order", body)
}

// SendPasswordReset carries the single-use reset token.
func (m *SMTPMailer) SendPasswordReset(to, name, token string) error {
	body := fmt.Sprintf(
		"<h2>Hello, %s</h2><p>A password reset was requested for your account. Click the link below to choose a new password. The link expires in one hour; if you did not ask for this, ignore this email.</p><p><a href=\"%s/reset-password?token=%s\">Reset password</a></p>",
		name, m.siteURL, token,
	)
	return m.send("password_reset", to, "Reset your Ecomly password", body)
}

// SendEmailVerification carries the single-use verification token.
func (m *SMTPMailer) SendEmailVerification(to, name, token string) error {
	body := fmt.Sprintf(
		"<h2>Hello, %s</h2><p>Please confirm your email address to complete your registration.</p><p><a href=\"%s/verify-email?token=%s\">Verify email</a></p>",
		name, m.siteURL, token,
	)
	return m.send("email_verification", to, "Verify your Ecomly email", body)
}

func (m *SMTPMailer) send(template, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		metrics.RecordEmail(template, "error")
		m.log.Error().Err(err).Str("template", template).Msg("Email delivery failed")
		return fmt.Errorf("sending %s email: %w", template, err)
	}
	metrics.RecordEmail(template, "sent")
	return nil
}

// NoopMailer discards emails. Used when SMTP is not configured and in tests.
type NoopMailer struct{}

// SendWelcome implements Mailer.
func (NoopMailer) SendWelcome(string, string) error { return nil }

// SendOrderConfirmation implements Mailer.
func (NoopMailer) SendOrderConfirmation(string, string, string, int64) error { return nil }

// SendPasswordReset implements Mailer.
func (NoopMailer) SendPasswordReset(string, string, string) error { return nil }

// SendEmailVerification implements Mailer.
func (NoopMailer) SendEmailVerification(string, string, string) error { return nil }
