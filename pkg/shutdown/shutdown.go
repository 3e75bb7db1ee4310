// Package shutdown coordinates graceful teardown on SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Manager collects shutdown functions and runs them, in reverse
// registration order, once a termination signal arrives.
type Manager struct {
	shutdownFuncs []func(context.Context) error
	mu            sync.Mutex
	timeout       time.Duration
	doneChan      chan struct{}
	once          sync.Once
}

// New creates a shutdown manager with the given per-shutdown timeout.
func New(timeout time.Duration) *Manager {
	return &Manager{
		timeout:  timeout,
		doneChan: make(chan struct{}),
	}
}

// Register adds a shutdown function. Functions run in LIFO order.
func (m *Manager) Register(fn func(context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdownFuncs = append(m.shutdownFuncs, fn)
}

// Wait blocks until SIGINT or SIGTERM is received, then returns the
// signal. Done() is closed before returning.
func (m *Manager) Wait() os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	m.once.Do(func() { close(m.doneChan) })
	return sig
}

// Done returns a channel closed when shutdown has been initiated.
func (m *Manager) Done() <-chan struct{} {
	return m.doneChan
}

// Shutdown runs the registered functions in reverse order, each bounded
// by the manager's timeout. Errors are collected and returned.
func (m *Manager) Shutdown() []error {
	m.mu.Lock()
	funcs := make([]func(context.Context) error, len(m.shutdownFuncs))
	copy(funcs, m.shutdownFuncs)
	m.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		if err := funcs[i](ctx); err != nil {
			errs = append(errs, err)
		}
		cancel()
	}
	return errs
}
