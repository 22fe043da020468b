package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grab-simulator/backend/internal/config"
	queueClient "github.com/grab-simulator/backend/internal/queue/client"
	"github.com/grab-simulator/backend/internal/queue/task"
	"github.com/grab-simulator/backend/internal/worker"
	"github.com/grab-simulator/backend/pkg/logger"

	"go.uber.org/zap"
)

// EmailService delivers codes either inline or through the send email queue.
type EmailService struct {
	sender  worker.EmailSender
	config  config.EmailConfig
	enabled bool
	codeTTL time.Duration
	now     func() time.Time
}

func newEmailService(sender worker.EmailSender, config config.EmailConfig, codeTTL time.Duration) *EmailService {
	return &EmailService{
		enabled: config.Enabled,
		sender:  sender,
		config:  config,
		codeTTL: codeTTL,
		now:     time.Now,
	}
}

func (s *EmailService) SendOtpEmail(ctx context.Context, email string, code string) error {
	if !s.enabled {
		logger.Warn("email delivery disabled, code not sent", zap.String("email", email))
		return nil
	}

	if s.config.Async {
		return s.enqueue(ctx, email, code)
	}

	return s.sender.SendOtpEmail(ctx, email, code)
}

func (s *EmailService) enqueue(ctx context.Context, email string, code string) error {
	client := queueClient.GetClient(ctx)
	if client == nil {
		return errors.New("queue client is not configured")
	}

	// a queued code is useless once it expired
	t, err := task.NewSendOtpEmailTask(email, code, s.now().Add(s.codeTTL))
	if err != nil {
		return fmt.Errorf("create send email task failed: %w", err)
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue send email task failed: %w", err)
	}

	return nil
}
