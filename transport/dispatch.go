package transport

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/logger"
)

// DispatchLoop is the shared event-dispatch resource. Network clients built
// on top of it reuse one bounded pool of I/O goroutines and one dialer
// instead of allocating their own.
//
// Instances obtained from a registry are borrowed; only the creator calls
// Close.
type DispatchLoop interface {
	// Submit schedules fn on the loop's worker pool. It blocks while the
	// pool is saturated and returns an error once the loop is closed.
	Submit(fn func()) error

	// DialContext opens a connection using the loop's shared dialer.
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)

	// Close stops the loop and waits for in-flight tasks to finish.
	Close() error
}

// loop is the default DispatchLoop backed by a weighted semaphore over a
// net.Dialer.
type loop struct {
	dialer *net.Dialer
	sem    *semaphore.Weighted
	log    *logger.Logger

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// LoopConfig configures a dispatch loop.
type LoopConfig struct {
	// Workers bounds the number of concurrently running tasks. Defaults to 8.
	Workers int
	// DialTimeout bounds connection establishment. Defaults to 10s.
	DialTimeout time.Duration
	// KeepAlive is the TCP keep-alive interval. Defaults to 30s.
	KeepAlive time.Duration
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *LoopConfig) ApplyDefaults() {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = 10 * time.Second
	}
	if c.KeepAlive <= 0 {
		c.KeepAlive = 30 * time.Second
	}
}

// NewDispatchLoop creates a dispatch loop with the given configuration.
func NewDispatchLoop(cfg LoopConfig) DispatchLoop {
	cfg.ApplyDefaults()
	return &loop{
		dialer: &net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: cfg.KeepAlive,
		},
		sem: semaphore.NewWeighted(int64(cfg.Workers)),
		log: logger.WithComponent("dispatch-loop"),
	}
}

func (l *loop) Submit(fn func()) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return errors.InvalidArgument("dispatch loop is closed")
	}
	l.wg.Add(1)
	l.mu.Unlock()

	if err := l.sem.Acquire(context.Background(), 1); err != nil {
		l.wg.Done()
		return err
	}

	go func() {
		defer l.wg.Done()
		defer l.sem.Release(1)
		fn()
	}()
	return nil
}

func (l *loop) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return l.dialer.DialContext(ctx, network, addr)
}

func (l *loop) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	l.wg.Wait()
	l.log.Debug("dispatch loop closed")
	return nil
}
