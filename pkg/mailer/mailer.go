package mailer

import (
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

// New returns nil when no SMTP host is configured; callers treat a nil
// mailer as "notifications disabled".
func New(host string, port int, sender, password string) *SMTPMailer {
	if host == "" || sender == "" {
		return nil
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, sender, password),
		sender: sender,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
