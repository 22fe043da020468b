package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grab-simulator/backend/internal/queue/task"
	"github.com/grab-simulator/backend/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct{ mock.Mock }

func (m *mockEmailSender) SendOtpEmail(ctx context.Context, email string, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

func TestSendOtpEmailProcessor(t *testing.T) {
	sender := new(mockEmailSender)
	sender.On("SendOtpEmail", mock.Anything, "u@x.com", "123456").Return(nil).Once()

	p := NewSendOtpEmailProcessor(&worker.Workers{EmailSender: sender})

	tsk, err := task.NewSendOtpEmailTask("u@x.com", "123456", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, task.SendOtpEmailTaskName, tsk.Type())

	assert.NoError(t, p.ProcessTask(context.Background(), tsk))
	sender.AssertExpectations(t)
}

func TestSendOtpEmailProcessor_Errors(t *testing.T) {
	sender := new(mockEmailSender)
	sender.On("SendOtpEmail", mock.Anything, "u@x.com", "123456").Return(errors.New("down")).Once()
	p := NewSendOtpEmailProcessor(&worker.Workers{EmailSender: sender})

	tsk, err := task.NewSendOtpEmailTask("u@x.com", "123456", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Error(t, p.ProcessTask(context.Background(), tsk))

	assert.Error(t, p.ProcessTask(context.Background(), asynq.NewTask(task.SendOtpEmailTaskName, []byte("{"))))
}
