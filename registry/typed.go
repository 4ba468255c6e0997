package registry

import "reflect"

// typeOf resolves the registration key for T. For interface types
// reflect.TypeOf on a zero value yields nil, so the key is taken from a
// pointer's element type instead.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register stores instance under the type key T. Registering an
// implementation under the interface its consumers know about makes it
// discoverable by that interface:
//
//	registry.Register[transport.DispatchLoop](reg, loop)
func Register[T any](r *Registry, instance T) error {
	return r.RegisterService(typeOf[T](), instance)
}

// RegisterNamed stores instance under the composite (T, name) key.
func RegisterNamed[T any](r *Registry, name string, instance T) error {
	return r.RegisterNamedService(typeOf[T](), name, instance)
}

// Lookup returns the instance registered under the type key T. A mismatch
// between the stored value and T is treated as a miss, never a panic: the
// registry guarantees type consistency when registration goes through the
// typed API, so a failed assertion means nothing was registered for T.
// A nil Context is an empty registry.
func Lookup[T any](c Context) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	instance, ok := c.Service(typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// LookupNamed returns the instance registered under the composite (T, name)
// key, with the same miss semantics as Lookup.
func LookupNamed[T any](c Context, name string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	instance, ok := c.NamedService(typeOf[T](), name)
	if !ok {
		return zero, false
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
