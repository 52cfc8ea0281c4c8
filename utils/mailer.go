package utils

import (
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single message with a plain text and an HTML part.
type Mailer interface {
	Send(to, subject, text, html string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	if from == "" {
		from = user
	}
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (m *SMTPMailer) Send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}
	return m.dialer.DialAndSend(msg)
}

// NopMailer drops every message. It is used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) Send(to, subject, _, _ string) error {
	log.Debug().Str("to", to).Str("subject", subject).Msg("mail disabled, message dropped")
	return nil
}
