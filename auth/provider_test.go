package auth

import (
	"testing"

	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/registry"
)

// legacyProvider predates resource sharing: it only implements Provider.
type legacyProvider struct {
	started int
	closed  int
}

func (p *legacyProvider) Name() string { return "legacy" }
func (p *legacyProvider) Start() error { p.started++; return nil }
func (p *legacyProvider) Close() error { p.closed++; return nil }

// awareProvider records which entry point was used.
type awareProvider struct {
	legacyProvider
	resourceStarts int
	seen           registry.Context
}

func (p *awareProvider) StartWithResources(res registry.Context) error {
	p.resourceStarts++
	p.seen = res
	return p.Start()
}

func TestStartDelegatesForLegacyProvider(t *testing.T) {
	reg := registry.New()

	p := &legacyProvider{}
	if err := Start(p, reg.View()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if p.started != 1 {
		t.Errorf("expected legacy Start invoked once, got %d", p.started)
	}
}

func TestStartDelegatesWithNilContext(t *testing.T) {
	p := &legacyProvider{}
	if err := Start(p, nil); err != nil {
		t.Fatalf("Start with nil context failed: %v", err)
	}
	if p.started != 1 {
		t.Errorf("expected legacy Start invoked once, got %d", p.started)
	}
}

func TestStartRoutesToResourceAware(t *testing.T) {
	reg := registry.New()

	p := &awareProvider{}
	if err := Start(p, reg.View()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if p.resourceStarts != 1 {
		t.Errorf("expected resource-aware path, got %d calls", p.resourceStarts)
	}
	if p.seen == nil {
		t.Error("expected the context to be passed through")
	}
	// The resource-aware path still reproduces the legacy effect.
	if p.started != 1 {
		t.Errorf("expected legacy Start reproduced, got %d", p.started)
	}
}

func TestResourceAwareAcceptsNilContext(t *testing.T) {
	p := &awareProvider{}
	if err := Start(p, nil); err != nil {
		t.Fatalf("Start with nil context failed: %v", err)
	}
	if p.resourceStarts != 1 || p.started != 1 {
		t.Error("nil context must be treated as an empty registry, not an error")
	}
}

func TestFactoryRegistry(t *testing.T) {
	if err := RegisterFactory("test-fake", func(params map[string]string) (Provider, error) {
		return &legacyProvider{}, nil
	}); err != nil {
		t.Fatalf("RegisterFactory failed: %v", err)
	}

	p, err := Create("test-fake", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Name() != "legacy" {
		t.Errorf("unexpected provider: %s", p.Name())
	}

	if _, err := Create("no-such-provider", nil); !errors.IsCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("unknown provider: expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestFactoryRegistryValidation(t *testing.T) {
	if err := RegisterFactory("", func(map[string]string) (Provider, error) { return nil, nil }); !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("empty name: expected INVALID_ARGUMENT, got %v", err)
	}
	if err := RegisterFactory("x", nil); !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("nil factory: expected INVALID_ARGUMENT, got %v", err)
	}
}
