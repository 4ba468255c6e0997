package component

import (
	"context"
	"errors"
	"testing"
)

func TestStartStopOrdering(t *testing.T) {
	reg := NewRegistry()
	var order []string

	mk := func(name string) Component {
		return &Func{
			ComponentName: name,
			StartFunc: func(context.Context) error {
				order = append(order, "start:"+name)
				return nil
			},
			StopFunc: func(context.Context) error {
				order = append(order, "stop:"+name)
				return nil
			},
		}
	}

	for _, name := range []string{"loop", "timer", "resolver"} {
		if err := reg.Register(mk(name)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	ctx := context.Background()
	if err := reg.StartAll(ctx); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := reg.StopAll(ctx); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	want := []string{
		"start:loop", "start:timer", "start:resolver",
		"stop:resolver", "stop:timer", "stop:loop",
	}
	if len(order) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestDuplicateRegistration(t *testing.T) {
	reg := NewRegistry()
	c := &Func{ComponentName: "loop"}
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(c); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestStartFailureStopsOnlyStarted(t *testing.T) {
	reg := NewRegistry()
	var stopped []string

	ok := &Func{
		ComponentName: "loop",
		StopFunc: func(context.Context) error {
			stopped = append(stopped, "loop")
			return nil
		},
	}
	bad := &Func{
		ComponentName: "timer",
		StartFunc: func(context.Context) error {
			return errors.New("boom")
		},
		StopFunc: func(context.Context) error {
			stopped = append(stopped, "timer")
			return nil
		},
	}

	reg.Register(ok)
	reg.Register(bad)

	ctx := context.Background()
	if err := reg.StartAll(ctx); err == nil {
		t.Fatal("expected StartAll to fail")
	}
	if err := reg.StopAll(ctx); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	if len(stopped) != 1 || stopped[0] != "loop" {
		t.Errorf("expected only the started component stopped, got %v", stopped)
	}
}

func TestGet(t *testing.T) {
	reg := NewRegistry()
	c := &Func{ComponentName: "resolver"}
	reg.Register(c)

	if got := reg.Get("resolver"); got != Component(c) {
		t.Error("expected registered component back")
	}
	if got := reg.Get("missing"); got != nil {
		t.Error("expected nil for unknown component")
	}
}
