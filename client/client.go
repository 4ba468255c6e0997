package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AradhyaSharma31/pulsar/auth"
	"github.com/AradhyaSharma31/pulsar/component"
	"github.com/AradhyaSharma31/pulsar/logger"
	"github.com/AradhyaSharma31/pulsar/registry"
	"github.com/AradhyaSharma31/pulsar/transport"
)

// TimerNameOperation is the name the client registers its timer under, in
// addition to the plain type key, so providers needing a specific timer role
// can address it.
const TimerNameOperation = "operation"

// Client is an assembled messaging client instance. Each client has its own
// service registry; the resource instances inside it may be shared across
// clients by a deployment.
type Client struct {
	id       string
	cfg      Config
	reg      *registry.Registry
	provider auth.Provider

	loop     transport.DispatchLoop
	timer    transport.Timer
	resolver transport.DNSResolver

	owned *component.Registry
	log   *logger.Logger
}

// New assembles a client: shared resources are created (or adopted from
// options), placed in a fresh registry, and the configured authentication
// provider is initialized with the registry's read-only view. Any
// initialization failure aborts construction and releases whatever the
// client had created so far.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := resolveOptions(opts)

	c := &Client{
		id:    uuid.NewString(),
		cfg:   cfg,
		reg:   registry.New(),
		owned: component.NewRegistry(),
	}
	c.log = logger.New(&cfg.Logging).
		WithComponent("client").
		WithFields(map[string]interface{}{logger.FieldClientID: c.id})

	c.assembleResources(o)

	if err := c.owned.StartAll(context.Background()); err != nil {
		return nil, err
	}

	if err := c.populateRegistry(); err != nil {
		c.releaseOwned()
		return nil, err
	}

	if err := c.startAuthentication(); err != nil {
		c.releaseOwned()
		return nil, err
	}

	c.log.Debug("client assembled",
		logger.Fields("service_url", cfg.ServiceURL))
	return c, nil
}

// assembleResources adopts injected resources and creates the rest. Only
// created resources are tracked for shutdown.
func (c *Client) assembleResources(o options) {
	if o.loop != nil {
		c.loop = o.loop
	} else {
		loop := transport.NewDispatchLoop(transport.LoopConfig{
			DialTimeout: c.cfg.OperationTimeout,
		})
		c.loop = loop
		c.owned.Register(&component.Func{
			ComponentName: "dispatch-loop",
			StopFunc:      func(context.Context) error { return loop.Close() },
		})
	}

	if o.timer != nil {
		c.timer = o.timer
	} else {
		timer := transport.NewTimer()
		c.timer = timer
		c.owned.Register(&component.Func{
			ComponentName: "timer",
			StopFunc:      func(context.Context) error { timer.Stop(); return nil },
		})
	}

	if o.resolver != nil {
		c.resolver = o.resolver
	} else {
		c.resolver = transport.NewDNSResolver()
	}
}

func (c *Client) populateRegistry() error {
	if err := registry.Register(c.reg, c.loop); err != nil {
		return err
	}
	if err := registry.Register(c.reg, c.timer); err != nil {
		return err
	}
	if err := registry.RegisterNamed(c.reg, TimerNameOperation, c.timer); err != nil {
		return err
	}
	return registry.Register(c.reg, c.resolver)
}

func (c *Client) startAuthentication() error {
	plugin := c.cfg.Authentication.Plugin
	if plugin == "" {
		return nil
	}

	provider, err := auth.Create(plugin, c.cfg.Authentication.Params)
	if err != nil {
		return err
	}

	if err := auth.Start(provider, c.reg.View()); err != nil {
		// The provider may have built partial state; give it a chance to
		// release what it owns.
		if cerr := provider.Close(); cerr != nil {
			c.log.Warn("error closing provider after failed start",
				logger.ErrorFields("close_provider", cerr))
		}
		return fmt.Errorf("authentication initialization: %w", err)
	}

	c.provider = provider
	c.log.Debug("authentication provider started",
		logger.Fields(logger.FieldProvider, provider.Name()))
	return nil
}

// ID returns the client instance identifier.
func (c *Client) ID() string { return c.id }

// AuthenticationProvider returns the started provider, or nil when the
// client was assembled without authentication.
func (c *Client) AuthenticationProvider() auth.Provider { return c.provider }

// Resources returns the read-only view of this client's service registry.
func (c *Client) Resources() registry.Context { return c.reg.View() }

// DispatchLoop returns the dispatch loop this client uses, shared or owned.
func (c *Client) DispatchLoop() transport.DispatchLoop { return c.loop }

// Timer returns the timer this client uses, shared or owned.
func (c *Client) Timer() transport.Timer { return c.timer }

// Close shuts down the client: the provider first, then the resources the
// client created, in reverse creation order. Injected resources are left
// running for their owner.
func (c *Client) Close() error {
	var firstErr error

	if c.provider != nil {
		if err := c.provider.Close(); err != nil {
			firstErr = err
		}
		c.provider = nil
	}

	if err := c.releaseOwned(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (c *Client) releaseOwned() error {
	return c.owned.StopAll(context.Background())
}
