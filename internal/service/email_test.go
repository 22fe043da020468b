package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/grab-simulator/backend/internal/config"
	queueClient "github.com/grab-simulator/backend/internal/queue/client"
	"github.com/grab-simulator/backend/internal/queue/task"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *recordingEnqueuer) EnqueueContext(_ context.Context, t *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, t)
	return &asynq.TaskInfo{ID: "1", Type: t.Type()}, nil
}

func TestEmailService_Disabled(t *testing.T) {
	sender := new(mockNotifier)
	s := newEmailService(sender, config.EmailConfig{Enabled: false}, 5*time.Minute)

	assert.NoError(t, s.SendOtpEmail(context.Background(), "u@x.com", "123456"))
	sender.AssertNotCalled(t, "SendOtpEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailService_Sync(t *testing.T) {
	sender := new(mockNotifier)
	sender.On("SendOtpEmail", mock.Anything, "u@x.com", "123456").Return(nil).Once()
	s := newEmailService(sender, config.EmailConfig{Enabled: true}, 5*time.Minute)

	assert.NoError(t, s.SendOtpEmail(context.Background(), "u@x.com", "123456"))
	sender.AssertExpectations(t)
}

func TestEmailService_AsyncWithoutQueue(t *testing.T) {
	sender := new(mockNotifier)
	s := newEmailService(sender, config.EmailConfig{Enabled: true, Async: true}, 5*time.Minute)

	assert.Error(t, s.SendOtpEmail(context.Background(), "u@x.com", "123456"))
	sender.AssertNotCalled(t, "SendOtpEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailService_AsyncEnqueues(t *testing.T) {
	sender := new(mockNotifier)
	queue := &recordingEnqueuer{}
	ctx := queueClient.WithClient(context.Background(), queue)
	s := newEmailService(sender, config.EmailConfig{Enabled: true, Async: true}, 5*time.Minute)

	require.NoError(t, s.SendOtpEmail(ctx, "u@x.com", "123456"))

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, task.SendOtpEmailTaskName, queue.tasks[0].Type())

	var data task.SendOtpEmail
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &data))
	assert.Equal(t, "u@x.com", data.Email)
	assert.Equal(t, "123456", data.Code)

	sender.AssertNotCalled(t, "SendOtpEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailService_AsyncEnqueueFails(t *testing.T) {
	queue := &recordingEnqueuer{err: errors.New("redis down")}
	ctx := queueClient.WithClient(context.Background(), queue)
	s := newEmailService(new(mockNotifier), config.EmailConfig{Enabled: true, Async: true}, 5*time.Minute)

	assert.ErrorContains(t, s.SendOtpEmail(ctx, "u@x.com", "123456"), "redis down")
}
