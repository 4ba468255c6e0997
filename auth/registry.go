package auth

import (
	"sort"
	"sync"

	"github.com/AradhyaSharma31/pulsar/errors"
)

// Factory constructs a Provider from its string-keyed configuration
// parameters.
type Factory func(params map[string]string) (Provider, error)

// factoryRegistry is a thread-safe registry of named provider factories.
type factoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var providers = &factoryRegistry{factories: make(map[string]Factory)}

// RegisterFactory adds a named provider factory. Later registrations under
// the same name replace earlier ones.
func RegisterFactory(name string, f Factory) error {
	if name == "" {
		return errors.InvalidArgument("provider name must not be empty")
	}
	if f == nil {
		return errors.InvalidArgument("provider factory must not be nil")
	}

	providers.mu.Lock()
	defer providers.mu.Unlock()
	providers.factories[name] = f
	return nil
}

// Create builds a provider by factory name. Unknown names are a
// configuration error surfaced to whoever constructs the client.
func Create(name string, params map[string]string) (Provider, error) {
	providers.mu.RLock()
	f, ok := providers.factories[name]
	providers.mu.RUnlock()

	if !ok {
		return nil, errors.Configuration("authPlugin", "unknown provider "+name)
	}
	return f(params)
}

// Names returns all registered factory names, sorted.
func Names() []string {
	providers.mu.RLock()
	defer providers.mu.RUnlock()

	names := make([]string, 0, len(providers.factories))
	for name := range providers.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
