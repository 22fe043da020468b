package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the services use.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type ctxKey struct{}

var (
	mu      sync.RWMutex
	current Enqueuer
)

// WithClient returns a copy of ctx whose GetClient result is e.
func WithClient(ctx context.Context, e Enqueuer) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

// GetClient returns the enqueuer carried by ctx, falling back to the process
// wide one installed with SetClient. It returns nil when neither is set.
func GetClient(ctx context.Context) Enqueuer {
	if e, ok := ctx.Value(ctxKey{}).(Enqueuer); ok {
		return e
	}

	mu.RLock()
	defer mu.RUnlock()

	return current
}

// SetClient installs the process wide enqueuer and returns a func restoring
// the previous one.
func SetClient(e Enqueuer) func() {
	mu.Lock()
	prev := current
	current = e
	mu.Unlock()

	return func() { SetClient(prev) }
}
