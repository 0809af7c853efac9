package writer

// queue is a fixed-capacity FIFO holding pending tasks. It is safe for
// concurrent producers and a single consumer. A full queue rejects new
// tasks; it never blocks a producer and never evicts queued work.
type queue[R any] struct {
	ch chan *Task[R]
}

func newQueue[R any](capacity int) *queue[R] {
	return &queue[R]{ch: make(chan *Task[R], capacity)}
}

// offer inserts the task at the tail. It reports false without blocking
// when the queue is at capacity.
func (q *queue[R]) offer(t *Task[R]) bool {
	select {
	case q.ch <- t:
		return true
	default:
		return false
	}
}

// take removes the queue head without blocking.
func (q *queue[R]) take() (*Task[R], bool) {
	select {
	case t := <-q.ch:
		return t, true
	default:
		return nil, false
	}
}

func (q *queue[R]) depth() int {
	return len(q.ch)
}

func (q *queue[R]) capacity() int {
	return cap(q.ch)
}
