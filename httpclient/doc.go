// Package httpclient provides the outbound HTTP client used by
// authentication flows, configurable with shared networking resources.
//
// A flow that discovers a shared dispatch loop, timer, or DNS resolver wires
// them into the client's transport; anything absent falls back to the
// client's own defaults. The trust store, connect timeout, and read timeout
// come from flow configuration.
//
//	client, err := httpclient.New(httpclient.Config{
//	    ConnectTimeout: 10 * time.Second,
//	    ReadTimeout:    30 * time.Second,
//	    DispatchLoop:   loop, // optional, borrowed
//	})
//
// The client owns only its idle connections; Close never touches the shared
// resources it was configured with.
package httpclient
