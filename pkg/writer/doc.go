// Package writer serializes concurrent write requests against a shared,
// single-writer resource through a bounded in-memory task queue drained by
// exactly one worker goroutine.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                            Writer[R]                                │
//	│                                                                     │
//	│  Submit / Write / WriteWithID (any goroutine)                       │
//	│        │                                                            │
//	│        ▼                                                            │
//	│  ┌─────────────────────────────────────────────────────────┐        │
//	│  │              Bounded Queue (capacity 10,000)            │        │
//	│  │  [task1] [task2] [task3] ...     offer() → drop if full │        │
//	│  └────────────────────────────┬────────────────────────────┘        │
//	│                               │ one task per cycle                  │
//	│                               ▼                                     │
//	│  ┌─────────────────────────────────────────────────────────┐        │
//	│  │   Worker Loop (single goroutine, 5ms idle poll)         │        │
//	│  │   execute against target R → resolve completion handle  │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Submission Modes
//
// Three modes over one primitive:
//
//   - Fire and forget: Write / WriteWithID, or Submit with wait <= 0. The
//     call returns right after the task has been queued.
//   - Timed wait: Submit with wait > 0 blocks up to wait for the result.
//     A timeout abandons the wait, not the task: the task remains queued
//     and still executes, its result discarded.
//   - Best effort under overload: when the queue is at capacity the task is
//     dropped with a logged warning. Producers never block on submission.
//
// # Ordering and Concurrency
//
// Tasks execute in strict FIFO order relative to successful submissions.
// Exactly one goroutine ever touches the target resource, so the resource
// itself needs no locking. Any number of goroutines may submit
// concurrently.
//
// # Lifecycle
//
//	new ──► starting ──► running ──► stopping ──► terminated
//	              │           │           │
//	              └───────────┴───────────┴──────► failed
//
// Submissions are accepted in new, starting and running. Start blocks until
// the worker is running. Stop executes exactly one more cycle to flush the
// queue head, then terminates; tasks still queued beyond that head are
// abandoned unresolved. A panic in the loop machinery itself (never in a
// task, those resolve as errors) drives the writer to the terminal failed
// state.
//
// # Failure Semantics
//
// A task returning an error resolves its completion handle with that error;
// a caller blocked on Submit receives it wrapped in a TaskExecutionError
// with the original failure as cause. The worker loop always continues with
// the next cycle.
//
// # Usage Example
//
//	w := writer.New(store, writer.WithQueueCapacity(1000))
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	defer w.Stop(ctx)
//
//	// fire and forget
//	w.WriteWithID(func(ctx context.Context, s *store.Store) (any, error) {
//	    return nil, s.Nodes().Save(ctx, node)
//	}, "save-node")
//
//	// wait up to 200ms for the result
//	v, err := w.Submit(ctx, countNodes, "count-nodes", 200*time.Millisecond)
package writer
