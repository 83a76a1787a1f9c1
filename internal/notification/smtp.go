package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig captures the outbound mail account settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the display sender, e.g. `"Digital Agency" <ops@example.com>`.
	From string
}

// SMTPSender delivers mail over SMTP using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send makes a single delivery attempt.
func (s *SMTPSender) Send(mail Mail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	if mail.HTML {
		m.SetBody("text/html", mail.Body)
	} else {
		m.SetBody("text/plain", mail.Body)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
