package writer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

const (
	// DefaultQueueCapacity is the queue capacity used when no override is given.
	DefaultQueueCapacity = 10000

	defaultPollInterval = 5 * time.Millisecond
	defaultLogInterval  = 5 * time.Second
)

// State of the writer lifecycle.
type State string

const (
	StateNew        State = "new"
	StateStarting   State = "starting"
	StateRunning    State = "running"
	StateStopping   State = "stopping"
	StateTerminated State = "terminated"
	StateFailed     State = "failed"
)

type settings struct {
	queueCapacity int
	pollInterval  time.Duration
	logInterval   time.Duration
}

type Option func(*settings)

// WithQueueCapacity overrides the default queue capacity.
func WithQueueCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity > 0 {
			s.queueCapacity = capacity
		}
	}
}

// WithPollInterval overrides the delay between worker cycles when the queue
// is empty.
func WithPollInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithLogInterval overrides the minimum interval between queue-depth log
// lines.
func WithLogInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.logInterval = d
		}
	}
}

// Writer serializes writes against a single-writer target resource. Tasks
// are queued and executed by exactly one worker goroutine, in submission
// order. When the queue is at capacity new tasks are dropped and a warning
// is logged.
//
// Start must be called to begin processing and Stop should be called before
// the host shuts down.
type Writer[R any] struct {
	target  R
	factory TaskFactory[R]
	queue   *queue[R]

	pollInterval time.Duration
	logInterval  time.Duration

	mu      sync.Mutex
	state   State
	quit    chan struct{}
	started chan struct{}
	done    chan struct{}

	lastLogged atomic.Int64
}

// New creates a writer with the default task factory.
func New[R any](target R, opts ...Option) *Writer[R] {
	return NewWithFactory(target, NewTask[R], opts...)
}

// NewWithFactory creates a writer whose task envelopes are built by the
// given factory.
func NewWithFactory[R any](target R, factory TaskFactory[R], opts ...Option) *Writer[R] {
	s := settings{
		queueCapacity: DefaultQueueCapacity,
		pollInterval:  defaultPollInterval,
		logInterval:   defaultLogInterval,
	}
	for _, opt := range opts {
		opt(&s)
	}

	w := &Writer[R]{
		target:       target,
		factory:      factory,
		queue:        newQueue[R](s.queueCapacity),
		pollInterval: s.pollInterval,
		logInterval:  s.logInterval,
		state:        StateNew,
	}
	w.lastLogged.Store(time.Now().UnixMilli())
	return w
}

// Target returns the resource this writer writes to.
func (w *Writer[R]) Target() R {
	return w.target
}

// State returns the current lifecycle state.
func (w *Writer[R]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// QueueDepth returns the number of pending tasks.
func (w *Writer[R]) QueueDepth() int {
	return w.queue.depth()
}

// QueueCapacity returns the maximum number of pending tasks.
func (w *Writer[R]) QueueCapacity() int {
	return w.queue.capacity()
}

// Start launches the worker goroutine and blocks until the writer is
// running or ctx expires.
func (w *Writer[R]) Start(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case StateNew, StateTerminated:
	case StateFailed:
		w.mu.Unlock()
		return srvErrors.NewStartupError(fmt.Errorf("writer has failed and cannot be restarted"))
	default:
		w.mu.Unlock()
		return srvErrors.NewStartupError(fmt.Errorf("writer already started (state %q)", w.state))
	}
	w.state = StateStarting
	w.quit = make(chan struct{})
	w.started = make(chan struct{})
	w.done = make(chan struct{})
	started, done := w.started, w.done
	w.mu.Unlock()

	go w.run()

	select {
	case <-started:
		return nil
	case <-done:
		// the loop may have been stopped right after it came up
		select {
		case <-started:
			return nil
		default:
		}
		return srvErrors.NewStartupError(fmt.Errorf("worker loop exited before reaching the running state"))
	case <-ctx.Done():
		return srvErrors.NewStartupError(ctx.Err())
	}
}

// Stop instructs the worker to execute one final cycle and terminate, then
// blocks until the writer is terminated or ctx expires. Stopping an already
// terminated writer is a no-op.
func (w *Writer[R]) Stop(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case StateNew, StateTerminated, StateFailed:
		w.mu.Unlock()
		return nil
	case StateStopping:
		// another caller already requested the stop, wait alongside it
	default:
		w.state = StateStopping
		close(w.quit)
	}
	done := w.done
	w.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return srvErrors.NewShutdownError(ctx.Err())
	}
}

// Write submits a fire-and-forget task with the default diagnostic id.
func (w *Writer[R]) Write(work Work[R]) error {
	return w.WriteWithID(work, DefaultTaskID)
}

// WriteWithID submits a fire-and-forget task.
func (w *Writer[R]) WriteWithID(work Work[R], id string) error {
	_, err := w.Submit(context.Background(), work, id, 0)
	return err
}

// Submit queues a task for execution against the target resource.
//
// When the queue is full the task is dropped, a warning is logged and
// (nil, nil) is returned. When wait <= 0 Submit returns right after the
// task has been queued. Otherwise Submit blocks up to wait for the result:
// on timeout or on ctx cancellation it logs a warning and returns
// (nil, nil), leaving the task queued for later execution; a failure of the
// task itself is returned to the caller with the original error as cause.
func (w *Writer[R]) Submit(ctx context.Context, work Work[R], id string, wait time.Duration) (any, error) {
	if id == "" {
		id = DefaultTaskID
	}

	if state := w.State(); state != StateNew && state != StateStarting && state != StateRunning {
		return nil, srvErrors.NewWriterNotRunningError(string(state))
	}

	task := w.factory(id, work)

	if !w.queue.offer(task) {
		zap.S().Named("writer").Warnw("queue is full, dropping task",
			"id", id, "capacity", w.queue.capacity())
		return nil, nil
	}

	if wait <= 0 {
		// caller is not interested in the result
		return nil, nil
	}

	return w.block(ctx, task, wait)
}

func (w *Writer[R]) block(ctx context.Context, task *Task[R], wait time.Duration) (any, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case res := <-task.C():
		if res.Err != nil {
			if srvErrors.IsTaskExecutionError(res.Err) {
				return nil, res.Err
			}
			return nil, srvErrors.NewTaskExecutionError(task.ID(), res.Err)
		}
		return res.Data, nil
	case <-timer.C:
		zap.S().Named("writer").Warnw("task was not executed within the wait budget",
			"id", task.ID(), "waitMillis", wait.Milliseconds())
		return nil, nil
	case <-ctx.Done():
		zap.S().Named("writer").Warnw("waiting for task execution was interrupted",
			"id", task.ID(), "error", ctx.Err())
		return nil, nil
	}
}

// run is the single worker loop. It executes at most one task per cycle,
// sleeps for the poll interval when the queue was empty and re-arms
// immediately otherwise. On a stop request it executes exactly one more
// cycle to flush the queue head.
func (w *Writer[R]) run() {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("writer").Errorw("worker loop failed", "panic", rec)
			w.setState(StateFailed)
		}
		w.mu.Lock()
		done := w.done
		w.mu.Unlock()
		close(done)
	}()

	w.setState(StateRunning)
	close(w.started)

	for {
		select {
		case <-w.quit:
			w.runOneCycle()
			w.setState(StateTerminated)
			return
		default:
		}

		if !w.runOneCycle() {
			select {
			case <-w.quit:
				w.runOneCycle()
				w.setState(StateTerminated)
				return
			case <-time.After(w.pollInterval):
			}
		}
	}
}

// runOneCycle removes at most one task from the queue and executes it. It
// reports whether a task was executed.
func (w *Writer[R]) runOneCycle() bool {
	task, ok := w.queue.take()
	if ok {
		task.run(context.Background(), w.target)
	}
	w.logQueueDepthIfNeeded()
	return ok
}

func (w *Writer[R]) logQueueDepthIfNeeded() {
	now := time.Now()
	if now.Sub(time.UnixMilli(w.lastLogged.Load())) > w.logInterval && w.queue.depth() > 0 {
		zap.S().Named("writer").Infow("queue depth",
			"depth", w.queue.depth(), "capacity", w.queue.capacity())
		w.lastLogged.Store(now.UnixMilli())
	}
}

func (w *Writer[R]) setState(state State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = state
}
