package worker

import (
	"context"

	"github.com/grab-simulator/backend/internal/config"
	emailProvider "github.com/grab-simulator/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendOtpEmail(ctx context.Context, email string, code string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Auth.CodeTTL),
	}
}
