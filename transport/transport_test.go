package transport

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatchLoopSubmit(t *testing.T) {
	l := NewDispatchLoop(LoopConfig{Workers: 2})

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		err := l.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
		if err != nil {
			wg.Done()
			t.Fatalf("Submit failed: %v", err)
		}
	}
	wg.Wait()

	if got := atomic.LoadInt64(&count); got != 20 {
		t.Errorf("expected 20 tasks run, got %d", got)
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Submit(func() {}); err == nil {
		t.Error("expected Submit to fail after Close")
	}
}

func TestDispatchLoopCloseIdempotent(t *testing.T) {
	l := NewDispatchLoop(LoopConfig{})
	if err := l.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestTimerSchedule(t *testing.T) {
	tm := NewTimer()
	defer tm.Stop()

	done := make(chan struct{})
	tm.Schedule(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled task never ran")
	}
}

func TestTimerCancel(t *testing.T) {
	tm := NewTimer()
	defer tm.Stop()

	var ran int64
	cancel := tm.Schedule(30*time.Millisecond, func() { atomic.AddInt64(&ran, 1) })
	cancel()
	// Cancelling twice is harmless.
	cancel()

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt64(&ran) != 0 {
		t.Error("cancelled task must not run")
	}
}

func TestTimerStopCancelsPending(t *testing.T) {
	tm := NewTimer()

	var ran int64
	tm.Schedule(30*time.Millisecond, func() { atomic.AddInt64(&ran, 1) })
	tm.Stop()

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt64(&ran) != 0 {
		t.Error("Stop must cancel pending tasks")
	}

	// Scheduling after Stop is a no-op that still returns a cancel func.
	cancel := tm.Schedule(time.Millisecond, func() { atomic.AddInt64(&ran, 1) })
	cancel()
}
