package writer

import (
	"context"
	"fmt"
	"sync"
)

// DefaultTaskID is used when the caller does not provide a diagnostic id.
const DefaultTaskID = "UNKNOWN"

// Work is a unit of work executed by the writer against the target resource.
type Work[R any] func(ctx context.Context, target R) (any, error)

// Result carries the outcome of an executed task.
type Result struct {
	Data any
	Err  error
}

// TaskFactory builds the envelope for a submitted work. It is the
// construction-time extension point for wrapping execution, e.g. running
// every task inside a store transaction.
type TaskFactory[R any] func(id string, work Work[R]) *Task[R]

// Task wraps a Work with a diagnostic id and a single-assignment completion
// handle. The handle resolves exactly once; later resolutions are no-ops.
type Task[R any] struct {
	id     string
	work   Work[R]
	result chan Result
	once   sync.Once
}

// NewTask is the default TaskFactory.
func NewTask[R any](id string, work Work[R]) *Task[R] {
	if id == "" {
		id = DefaultTaskID
	}
	return &Task[R]{
		id:     id,
		work:   work,
		result: make(chan Result, 1),
	}
}

func (t *Task[R]) ID() string {
	return t.id
}

// C returns the completion handle. It receives exactly one Result once the
// task has been executed.
func (t *Task[R]) C() <-chan Result {
	return t.result
}

// run executes the work and resolves the completion handle. A panic raised
// by the work is captured as an error and never reaches the worker loop.
func (t *Task[R]) run(ctx context.Context, target R) {
	defer func() {
		if rec := recover(); rec != nil {
			t.resolve(nil, fmt.Errorf("task %q panicked: %v", t.id, rec))
		}
	}()

	v, err := t.work(ctx, target)
	t.resolve(v, err)
}

func (t *Task[R]) resolve(v any, err error) {
	t.once.Do(func() {
		t.result <- Result{Data: v, Err: err}
	})
}
