package transport

import (
	"sync"
	"time"
)

// Timer is the shared deferred-execution resource. It replaces per-client
// time.AfterFunc sprawl with one trackable scheduler that can be shut down
// cleanly by its owner.
type Timer interface {
	// Schedule runs fn after d. The returned cancel function stops the
	// pending execution; calling it after the task ran is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())

	// Stop cancels all pending tasks. Only the creator calls Stop.
	Stop()
}

type timer struct {
	mu      sync.Mutex
	pending map[int]*time.Timer
	next    int
	stopped bool
}

// NewTimer creates a shared timer.
func NewTimer() Timer {
	return &timer{pending: make(map[int]*time.Timer)}
}

func (t *timer) Schedule(d time.Duration, fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return func() {}
	}

	id := t.next
	t.next++

	t.pending[id] = time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.pending, id)
		t.mu.Unlock()
		fn()
	})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if pt, ok := t.pending[id]; ok {
			pt.Stop()
			delete(t.pending, id)
		}
	}
}

func (t *timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for id, pt := range t.pending {
		pt.Stop()
		delete(t.pending, id)
	}
}
