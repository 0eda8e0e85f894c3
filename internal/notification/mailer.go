package notification

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer is the notification collaborator. Callers treat sends as
// fire-and-forget: failures are logged, never propagated.
type Mailer interface {
	SendWelcome(email, name string) error
	SendPasswordReset(email, resetURL string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendWelcome(email, name string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your account has been created. You can now sign in and start managing your hotels.</p>",
		name,
	)
	return m.send(email, "Welcome to Hotelier", body)
}

func (m *SMTPMailer) SendPasswordReset(email, resetURL string) error {
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p><p><a href=%q>Reset your password</a></p><p>If you did not request this, you can ignore this message.</p>",
		resetURL,
	)
	return m.send(email, "Reset your password", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// ConsoleMailer logs instead of sending, for local development and
// tests.
type ConsoleMailer struct{}

func (ConsoleMailer) SendWelcome(email, name string) error {
	log.Printf("mail(dev): welcome to=%s name=%s", email, name)
	return nil
}

func (ConsoleMailer) SendPasswordReset(email, resetURL string) error {
	log.Printf("mail(dev): password reset to=%s url=%s", email, resetURL)
	return nil
}
