package smtp

import (
	"errors"
	"fmt"

	"github.com/grab-simulator/backend/pkg/email"

	"github.com/go-gomail/gomail"
)

type SMTPSender struct {
	from     string
	fromName string
	pass     string
	host     string
	port     int
}

func NewSMTPSender(from, fromName, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	return &SMTPSender{from: from, fromName: fromName, pass: pass, host: host, port: port}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, s.fromName)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)

	switch {
	case input.PlainText != "" && input.Body != "":
		msg.SetBody("text/plain", input.PlainText)
		msg.AddAlternative("text/html", input.Body)
	case input.Body != "":
		msg.SetBody("text/html", input.Body)
	default:
		msg.SetBody("text/plain", input.PlainText)
	}

	dialer := gomail.NewDialer(s.host, s.port, s.from, s.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to sent email via smtp: %w", err)
	}

	return nil
}
