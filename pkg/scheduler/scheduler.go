package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type fifo[T any] []T

func (q *fifo[T]) Len() int { return len(*q) }

func (q *fifo[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *fifo[T]) Push(t T) {
	*q = append(*q, t)
}

type request struct {
	work Work[any]
	c    chan Result[any]
	ctx  context.Context
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
}

func newWorker(done chan any, wg *sync.WaitGroup) worker {
	return worker{done: done, wg: wg}
}

func (w worker) Work(r request) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[any]{Err: fmt.Errorf("scheduler worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.work(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

// Scheduler runs submitted work on a fixed pool of workers. The crawler
// uses it to fan out read-side handler work; anything mutating the graph
// must go through the single-threaded writer instead.
type Scheduler struct {
	workers    *fifo[worker]
	backlog    *fifo[request]
	close      chan any
	done       chan any
	work       chan request
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
	size       int
}

func NewScheduler(nbWorkers int) *Scheduler {
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    &fifo[worker]{},
		backlog:    &fifo[request]{},
		close:      make(chan any),
		done:       done,
		work:       make(chan request),
		mainCtx:    ctx,
		mainCancel: cancel,
		size:       nbWorkers,
	}
	for range nbWorkers {
		s.workers.Push(newWorker(done, &s.wg))
	}
	go s.run()
	return s
}

// Size returns the number of pool workers.
func (s *Scheduler) Size() int {
	return s.size
}

// AddWork submits work and returns its future. After Close the future
// resolves immediately with context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		// closing down, resolve the future with an error right away
		c <- Result[any]{Err: context.Canceled}
	case s.work <- request{work: w, c: c, ctx: ctx}:
	}

	return NewFuture(c, cancel)
}

// Close cancels outstanding work and waits for in-flight workers to
// return. It is idempotent.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.done
	})
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		select {
		case r := <-s.work:
			s.backlog.Push(r)
			s.dispatch()
		case <-s.done:
			s.workers.Push(newWorker(s.done, &s.wg))
			s.dispatch()
		case <-s.close:
			s.wg.Wait()
			return
		}
	}
}

// dispatch pairs backlog entries with available workers until one of the
// two runs out.
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.backlog.Len() > 0 {
		r := s.backlog.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
