package auth

import (
	"github.com/AradhyaSharma31/pulsar/registry"
)

// Provider is implemented by every authentication mechanism. Initialization
// either succeeds, enabling subsequent use, or fails with an error that
// aborts client construction.
type Provider interface {
	// Name returns the provider identifier (e.g., "oauth2", "token").
	Name() string

	// Start performs resource-agnostic initialization.
	Start() error

	// Close releases resources the provider itself created. It must never
	// release anything obtained from a shared resource registry.
	Close() error
}

// ResourceAware is the optional capability interface for providers that
// consume shared client resources during initialization. Implementations
// must still reproduce the effect of Start for legacy compatibility.
type ResourceAware interface {
	// StartWithResources initializes the provider with access to shared
	// resources. A nil res is valid and equivalent to an empty registry.
	StartWithResources(res registry.Context) error
}

// Start initializes a provider, routing to its resource-aware entry point
// when it implements ResourceAware and falling back to the resource-agnostic
// Start otherwise. This is the default-delegation rule of the two-phase
// protocol: providers that never opted in to resource sharing see no
// behavioral change, with or without a registry present.
func Start(p Provider, res registry.Context) error {
	if ra, ok := p.(ResourceAware); ok {
		return ra.StartWithResources(res)
	}
	return p.Start()
}
