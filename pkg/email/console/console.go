package console

import (
	"github.com/grab-simulator/backend/pkg/email"
	"github.com/grab-simulator/backend/pkg/logger"

	"go.uber.org/zap"
)

// Sender writes messages to the process log instead of delivering them.
// Meant for local runs only.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	logger.Info("email",
		zap.String("to", input.To),
		zap.String("subject", input.Subject),
		zap.String("body", input.PlainText),
	)

	return nil
}
