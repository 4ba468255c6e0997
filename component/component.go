package component

import "context"

// Component represents a lifecycle-managed shared resource owned by a
// client assembly (dispatch loop, timer, DNS resolver).
type Component interface {
	// Name returns the unique name of the component for registration.
	Name() string

	// Start initializes and starts the component.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the component and releases its resources.
	Stop(ctx context.Context) error
}

// Func adapts start/stop closures into a Component. Either function may be
// nil for resources that need no work in that phase.
type Func struct {
	ComponentName string
	StartFunc     func(ctx context.Context) error
	StopFunc      func(ctx context.Context) error
}

// Name implements Component.
func (f *Func) Name() string { return f.ComponentName }

// Start implements Component.
func (f *Func) Start(ctx context.Context) error {
	if f.StartFunc == nil {
		return nil
	}
	return f.StartFunc(ctx)
}

// Stop implements Component.
func (f *Func) Stop(ctx context.Context) error {
	if f.StopFunc == nil {
		return nil
	}
	return f.StopFunc(ctx)
}
