package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	SendOtpEmailTaskName  = "sendOtpEmailTask"
	SendOtpEmailQueueName = "sendOtpEmailQueue"

	sendOtpEmailMaxRetry = 5
)

type SendOtpEmail struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// NewSendOtpEmailTask builds the delivery task for a code that stops being
// valid at expiresAt. The task is not retried past that point and is not
// retained once processed, so the plain code leaves redis with the code's
// lifetime.
func NewSendOtpEmailTask(email string, code string, expiresAt time.Time) (*asynq.Task, error) {
	var data SendOtpEmail
	data.Email = email
	data.Code = code

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendOtpEmailTaskName,
		payload,
		asynq.MaxRetry(sendOtpEmailMaxRetry),
		asynq.Queue(SendOtpEmailQueueName),
		asynq.Deadline(expiresAt),
		asynq.Retention(0),
	), nil
}
