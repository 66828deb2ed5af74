// Package lifecycle coordinates startup and graceful shutdown of long-running systems.
// Systems register hooks with a Coordinator; startup hooks run concurrently
// and readiness flips once all of them succeed. Shutdown cancels the shared
// context and waits for every shutdown hook within a deadline.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator tracks startup and shutdown hooks around a cancellable context.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup
	ready      atomic.Bool

	mu  sync.Mutex
	err error
}

// New creates a Coordinator with a fresh root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator context, cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine and tracks it for WaitForStartup.
// An error from fn keeps the coordinator from becoming ready.
func (c *Coordinator) OnStartup(fn func() error) {
	c.startupWg.Add(1)
	go func() {
		defer c.startupWg.Done()
		if err := fn(); err != nil {
			c.mu.Lock()
			c.err = errors.Join(c.err, err)
			c.mu.Unlock()
		}
	}()
}

// OnShutdown runs fn in its own goroutine and tracks it for Shutdown.
// Hooks typically block on Context().Done() before releasing resources.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Add(1)
	go func() {
		defer c.shutdownWg.Done()
		fn()
	}()
}

// WaitForStartup blocks until every startup hook returns. It marks the
// coordinator ready when none failed and otherwise returns their errors joined.
func (c *Coordinator) WaitForStartup() error {
	c.startupWg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.ready.Store(true)
	return nil
}

// Ready reports whether WaitForStartup has completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the context and waits up to timeout for shutdown hooks.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %s", timeout)
	}
}
