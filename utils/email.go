package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/the-witty-one/doctors-appointment-api/config"
)

// Mailer sends HTML mail through the configured SMTP relay.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, body string) error {
	port, _ := strconv.Atoi(m.cfg.Port)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}
