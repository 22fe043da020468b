package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grab-simulator/backend/internal/queue/task"
	"github.com/grab-simulator/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendOtpEmailProcessor struct {
	workers *worker.Workers
}

func NewSendOtpEmailProcessor(workers *worker.Workers) *sendOtpEmailProcessor {
	return &sendOtpEmailProcessor{
		workers: workers,
	}
}

func (p *sendOtpEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendOtpEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send otp email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendOtpEmail(ctx, data.Email, data.Code); err != nil {
		return fmt.Errorf("send otp email failed: %w", err)
	}

	return nil
}
