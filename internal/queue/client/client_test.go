package client

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

type stubEnqueuer struct{ name string }

func (s *stubEnqueuer) EnqueueContext(context.Context, *asynq.Task, ...asynq.Option) (*asynq.TaskInfo, error) {
	return &asynq.TaskInfo{}, nil
}

func TestGetClient(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetClient(ctx))

	global := &stubEnqueuer{name: "global"}
	restore := SetClient(global)
	assert.Same(t, global, GetClient(ctx))

	scoped := &stubEnqueuer{name: "scoped"}
	assert.Same(t, scoped, GetClient(WithClient(ctx, scoped)))

	restore()
	assert.Nil(t, GetClient(ctx))
}
