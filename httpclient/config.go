package httpclient

import (
	"fmt"
	"time"

	"github.com/AradhyaSharma31/pulsar/transport"
)

const (
	// DefaultConnectTimeout is applied when no connect timeout is configured.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout is applied when no read timeout is configured.
	DefaultReadTimeout = 30 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// ConnectTimeout bounds connection establishment. Defaults to 10s.
	ConnectTimeout time.Duration

	// ReadTimeout bounds the whole request including body read. Defaults to 30s.
	ReadTimeout time.Duration

	// TrustCertsFilePath points to a PEM trust store for TLS. Empty means
	// system roots. An unreadable file is logged and skipped, not fatal.
	TrustCertsFilePath string

	// UserAgent is sent with every request.
	UserAgent string

	// Headers are default headers applied to all requests.
	Headers map[string]string

	// DispatchLoop, when set, supplies the shared dialer for the transport.
	// Borrowed: never closed by the client.
	DispatchLoop transport.DispatchLoop

	// Timer, when set, supplies shared deferred execution for consumers of
	// the client. Borrowed: never stopped by the client.
	Timer transport.Timer

	// Resolver, when set, is carried for future resolution wiring.
	// Borrowed: accepted and stored even while unconsumed.
	Resolver transport.DNSResolver
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("httpclient: connect timeout must be positive")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("httpclient: read timeout must be positive")
	}
	return nil
}
