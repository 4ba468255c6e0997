package registry

import (
	"reflect"
	"sync"

	"github.com/AradhyaSharma31/pulsar/errors"
)

// namedKey is the composite key for named service entries.
type namedKey struct {
	t    reflect.Type
	name string
}

// Registry is a thread-safe heterogeneous store of shared service instances.
// Entries are keyed by type, or by type and name when multiple instances of
// the same type coexist (for example two timers with different roles).
//
// Re-registering a key replaces the prior instance; entries are never removed
// for the lifetime of the registry. Registration and lookup are safe for
// concurrent use with no external synchronization. Each key is updated
// atomically; no guarantee is made across different keys.
type Registry struct {
	mu       sync.RWMutex
	services map[reflect.Type]any
	named    map[namedKey]any
}

// New creates a new empty Registry.
func New() *Registry {
	return &Registry{
		services: make(map[reflect.Type]any),
		named:    make(map[namedKey]any),
	}
}

// RegisterService stores instance under the given type key, replacing any
// prior entry. Returns an INVALID_ARGUMENT error if the type or the instance
// is nil.
func (r *Registry) RegisterService(t reflect.Type, instance any) error {
	if t == nil {
		return errors.InvalidArgument("service type must not be nil")
	}
	if instance == nil {
		return errors.InvalidArgument("service instance must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[t] = instance
	return nil
}

// RegisterNamedService stores instance under the composite (type, name) key,
// replacing any prior entry. Returns an INVALID_ARGUMENT error if the type or
// the instance is nil, or the name is empty.
func (r *Registry) RegisterNamedService(t reflect.Type, name string, instance any) error {
	if t == nil {
		return errors.InvalidArgument("service type must not be nil")
	}
	if name == "" {
		return errors.InvalidArgument("service name must not be empty")
	}
	if instance == nil {
		return errors.InvalidArgument("service instance must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[namedKey{t: t, name: name}] = instance
	return nil
}

// Service returns the most recently registered instance for the given type.
// An unregistered type is a plain miss, never an error.
func (r *Registry) Service(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.services[t]
	return instance, ok
}

// NamedService returns the instance registered under the composite
// (type, name) key. An unregistered key or an empty name is a plain miss.
func (r *Registry) NamedService(t reflect.Type, name string) (any, bool) {
	if t == nil || name == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.named[namedKey{t: t, name: name}]
	return instance, ok
}

// Len returns the number of registered entries across both key spaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services) + len(r.named)
}

// View returns the registry narrowed to its read-only Context contract.
// The view shares storage with the registry: entries registered after the
// view is handed out are still visible through it.
func (r *Registry) View() Context {
	return r
}
