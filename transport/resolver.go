package transport

import (
	"context"
	"net"
)

// DNSResolver is the shared name-resolution resource. Sharing one resolver
// across clients keeps a single point for resolution policy and caching.
type DNSResolver interface {
	// LookupHost resolves host to a list of addresses.
	LookupHost(ctx context.Context, host string) ([]string, error)
}

type resolver struct {
	r *net.Resolver
}

// NewDNSResolver creates a resolver backed by the system resolver.
func NewDNSResolver() DNSResolver {
	return &resolver{r: net.DefaultResolver}
}

func (rs *resolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return rs.r.LookupHost(ctx, host)
}
