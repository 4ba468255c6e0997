package client

import "github.com/AradhyaSharma31/pulsar/transport"

// Option customizes client assembly.
type Option func(*options)

type options struct {
	loop     transport.DispatchLoop
	timer    transport.Timer
	resolver transport.DNSResolver
}

// WithDispatchLoop shares an externally owned dispatch loop with this client.
// The client will not close it.
func WithDispatchLoop(loop transport.DispatchLoop) Option {
	return func(o *options) { o.loop = loop }
}

// WithTimer shares an externally owned timer with this client.
// The client will not stop it.
func WithTimer(timer transport.Timer) Option {
	return func(o *options) { o.timer = timer }
}

// WithDNSResolver shares an externally owned DNS resolver with this client.
func WithDNSResolver(resolver transport.DNSResolver) Option {
	return func(o *options) { o.resolver = resolver }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
