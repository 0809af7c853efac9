package scheduler

import (
	"context"
)

// Work is an asynchronous computation executed by a pool worker.
type Work[T any] func(ctx context.Context) (T, error)

// Result carries the outcome of a Work.
type Result[T any] struct {
	Data T
	Err  error
}

// Future is the pending result of submitted work. Its channel receives
// exactly one Result; Stop cancels the work's context.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() chan T {
	return f.input
}

func (f *Future[T]) Stop() {
	f.cancel()
}
