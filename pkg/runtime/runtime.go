package runtime

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Module is a unit of background processing hooked into the database
// lifecycle. Initialize is called once the writer accepts work; Shutdown is
// called, in reverse registration order, before the writer stops.
type Module interface {
	ID() string
	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Lifecycle is the start/stop surface of the database writer.
type Lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runtime owns the writer lifecycle and the registered modules. It starts
// the writer first so modules can submit work from Initialize, and stops it
// last so work submitted during Shutdown still stands a chance to run.
type Runtime struct {
	writer Lifecycle

	mu      sync.Mutex
	modules []Module
	started bool
}

func New(writer Lifecycle) *Runtime {
	return &Runtime{writer: writer}
}

// Register adds a module. Module ids must be unique; registration is
// rejected after the runtime has started.
func (r *Runtime) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return fmt.Errorf("cannot register module %q: runtime already started", m.ID())
	}
	for _, existing := range r.modules {
		if existing.ID() == m.ID() {
			return fmt.Errorf("module %q already registered", m.ID())
		}
	}
	r.modules = append(r.modules, m)
	return nil
}

// ModuleIDs returns the ids of the registered modules in registration order.
func (r *Runtime) ModuleIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		ids = append(ids, m.ID())
	}
	return ids
}

// Start brings up the writer and initializes every module in registration
// order. On a module failure the already initialized modules are shut down
// in reverse order and the writer is stopped.
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("runtime already started")
	}
	r.started = true
	modules := make([]Module, len(r.modules))
	copy(modules, r.modules)
	r.mu.Unlock()

	if err := r.writer.Start(ctx); err != nil {
		r.setStarted(false)
		return err
	}

	for i, m := range modules {
		zap.S().Named("runtime").Infow("initializing module", "id", m.ID())
		if err := m.Initialize(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				if serr := modules[j].Shutdown(ctx); serr != nil {
					zap.S().Named("runtime").Errorw("failed to shut down module",
						"id", modules[j].ID(), "error", serr)
				}
			}
			if serr := r.writer.Stop(ctx); serr != nil {
				zap.S().Named("runtime").Errorw("failed to stop writer", "error", serr)
			}
			r.setStarted(false)
			return fmt.Errorf("failed to initialize module %q: %w", m.ID(), err)
		}
	}

	return nil
}

// Stop shuts down the modules in reverse registration order, then stops the
// writer. All shutdown errors are logged; the first one is returned.
func (r *Runtime) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = false
	modules := make([]Module, len(r.modules))
	copy(modules, r.modules)
	r.mu.Unlock()

	var firstErr error
	for i := len(modules) - 1; i >= 0; i-- {
		zap.S().Named("runtime").Infow("shutting down module", "id", modules[i].ID())
		if err := modules[i].Shutdown(ctx); err != nil {
			zap.S().Named("runtime").Errorw("failed to shut down module",
				"id", modules[i].ID(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := r.writer.Stop(ctx); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Runtime) setStarted(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = v
}
