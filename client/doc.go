// Package client assembles a Pulsar client instance: it owns the shared
// networking resources, populates a per-client service registry with them,
// and initializes the configured authentication provider with the registry's
// read-only view.
//
// Resources can also be passed in from outside so several clients share one
// dispatch loop, timer, or resolver:
//
//	loop := transport.NewDispatchLoop(transport.LoopConfig{})
//	c1, _ := client.New(cfg1, client.WithDispatchLoop(loop))
//	c2, _ := client.New(cfg2, client.WithDispatchLoop(loop))
//
// A client closes only the resources it created itself; injected resources
// are borrowed and remain the caller's responsibility.
package client
