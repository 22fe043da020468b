package worker

import (
	"context"
	"fmt"
	"time"

	emailProvider "github.com/grab-simulator/backend/pkg/email"
)

type emailSender struct {
	sender  emailProvider.Sender
	codeTTL time.Duration
}

func newEmailSender(sender emailProvider.Sender, codeTTL time.Duration) *emailSender {
	return &emailSender{
		sender:  sender,
		codeTTL: codeTTL,
	}
}

func (s *emailSender) SendOtpEmail(ctx context.Context, email string, code string) error {
	sendInput, err := emailProvider.NewOtpEmail(email, code, s.codeTTL)
	if err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
