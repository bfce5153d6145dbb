// Package goroutine runs tasks concurrently under a fixed concurrency limit.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/payloadguard/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is the per-CPU limit used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 8

// ErrClosed is returned by Go once Wait has been called.
var ErrClosed = errors.New("goroutine manager is closed")

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// Go blocks until a slot is free, so no scheduled task is ever dropped. Errors
// returned by tasks, including recovered panics, are collected and returned
// by Wait.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	stateMu sync.RWMutex
	closed  bool
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Limit returns the maximum number of tasks running at once.
func (g *Manager) Limit() int {
	return cap(g.sema)
}

// Go schedules f, waiting for a free slot. It returns ctx.Err() when ctx ends
// before a slot frees up, and ErrClosed after Wait was called.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) error {
	g.stateMu.RLock()
	defer g.stateMu.RUnlock()

	if g.closed {
		slog.WarnContext(ctx, "goroutine manager is closed, skipping new goroutine")
		return ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case g.sema <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer g.recover(ctx)

		if err := f(ctx); err != nil {
			g.collect(err)
		}
	}()

	return nil
}

func (g *Manager) recover(ctx context.Context) {
	rvr := recover()
	if rvr == nil {
		return
	}

	stack := debug.Stack()
	if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
		slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", paths)
	} else {
		slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", string(stack))
	}

	g.collect(fmt.Errorf("panic: %v", rvr))
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait closes the manager, blocks until all scheduled goroutines finish and
// returns any collected errors.
func (g *Manager) Wait() error {
	g.stateMu.Lock()
	g.closed = true
	g.stateMu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
