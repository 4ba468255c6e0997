// Package registry provides a concurrency-safe registry of shared client
// resources, keyed by type or by type and name.
//
// A client assembly creates one Registry per client, populates it with
// process-wide resources (dispatch loop, timer, DNS resolver), and hands the
// read-only Context view to authentication providers during initialization.
// Providers look up the resources they understand and fall back to their own
// defaults for anything absent.
//
// # Registration
//
//	reg := registry.New()
//	registry.Register[transport.DispatchLoop](reg, loop)
//	registry.RegisterNamed[transport.Timer](reg, "operation", timer)
//
// # Lookup
//
//	if loop, ok := registry.Lookup[transport.DispatchLoop](reg.View()); ok {
//	    // use the shared loop
//	}
//
// The registry stores non-owning references: values placed in it are borrowed
// by consumers and their lifecycle belongs to whoever created them.
package registry
