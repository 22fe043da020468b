package sendgrid

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grab-simulator/backend/pkg/email"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Sender struct {
	client   *sendgrid.Client
	from     string
	fromName string
	sandbox  bool
}

func NewSender(apiKey, from, fromName string, sandbox bool) (*Sender, error) {
	if apiKey == "" {
		return nil, errors.New("empty sendgrid api key")
	}

	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	return &Sender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
		sandbox:  sandbox,
	}, nil
}

func (s *Sender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", input.To)
	message := mail.NewSingleEmail(from, input.Subject, to, input.PlainText, input.Body)

	if s.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.SetMailSettings(ms)
	}

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}

	return nil
}
