// Package transport provides the process-wide networking primitives a
// deployment can share across client instances: a dispatch loop for I/O
// task scheduling and dialing, a timer for deferred work, and a DNS
// resolver.
//
// These are the resource types placed in a registry.Registry by the client
// assembly and discovered by authentication providers. Consumers borrow
// them: only the creator of an instance closes it.
package transport
