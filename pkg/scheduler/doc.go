// Package scheduler implements a worker pool for executing async work with
// futures.
//
// The scheduler manages a fixed pool of workers executing work functions
// concurrently. Work is submitted via AddWork and returns a Future used to
// retrieve the result or cancel the work. In this repository the pool
// carries the crawler's read-side fan-out only: graph mutations are
// serialized separately through pkg/writer.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────┐
//	│                       Scheduler                          │
//	│                                                          │
//	│  ┌──────────┐   ┌──────────┐        ┌──────────┐         │
//	│  │ Worker 1 │   │ Worker 2 │  ...   │ Worker N │         │
//	│  └────▲─────┘   └────▲─────┘        └────▲─────┘         │
//	│       └──────────────┼───────────────────┘               │
//	│                ┌─────┴──────┐                            │
//	│                │ dispatch() │                            │
//	│                └─────┬──────┘                            │
//	│        ┌─────────────┴─────────────┐                     │
//	│        │  backlog [r1] [r2] [r3]   │ ◄── AddWork(fn)     │
//	│        └───────────────────────────┘                     │
//	└──────────────────────────────────────────────────────────┘
//
// Each submission gets a buffered result channel and a context derived from
// the scheduler's main context. Workers recover panics into the result, so
// a misbehaving work function never takes the pool down. dispatch runs both
// when new work arrives and when a worker returns to the pool, so backlog
// entries are picked up as soon as capacity frees.
//
// # Cancellation and Shutdown
//
//   - future.Stop() cancels one work's context.
//   - Close() cancels the main context, waits for in-flight workers and is
//     idempotent; work submitted afterwards resolves with context.Canceled.
//
// # Usage
//
//	pool := scheduler.NewScheduler(4)
//	defer pool.Close()
//
//	future := pool.AddWork(func(ctx context.Context) (any, error) {
//	    return handler(ctx, node)
//	})
//
//	select {
//	case res := <-future.C():
//	    // res.Data / res.Err
//	case <-ctx.Done():
//	    future.Stop()
//	}
package scheduler
