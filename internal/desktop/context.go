package desktop

import (
	"context"
	"fmt"
	"sync"
)

// Runtime holds the Wails application context. It is attached in OnStartup
// and detached in OnShutdown; everything in this package that talks to the
// Wails runtime goes through it.
type Runtime struct {
	mu  sync.RWMutex
	ctx context.Context
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

func (r *Runtime) Attach(ctx context.Context) {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()
}

func (r *Runtime) Detach() {
	r.mu.Lock()
	r.ctx = nil
	r.mu.Unlock()
}

// Context returns the attached context, or false before startup and after
// shutdown.
func (r *Runtime) Context() (context.Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctx, r.ctx != nil
}

// call runs fn with the attached context. The Wails runtime panics on an
// invalid context, so panics are returned as errors.
func (r *Runtime) call(missing error, fn func(ctx context.Context)) (err error) {
	ctx, ok := r.Context()
	if !ok {
		return missing
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("wails runtime: %v", p)
		}
	}()
	fn(ctx)
	return nil
}
