package registry

import "reflect"

// Context is the read-only view of a Registry handed to authentication
// providers during initialization. It exposes only lookups: population is
// reserved for the client assembly that owns the registry.
//
// A nil Context is valid everywhere one is accepted and behaves like a
// registry with nothing in it.
type Context interface {
	// Service returns the instance registered for the given type, if any.
	Service(t reflect.Type) (any, bool)

	// NamedService returns the instance registered under the composite
	// (type, name) key, if any.
	NamedService(t reflect.Type, name string) (any, bool)
}
