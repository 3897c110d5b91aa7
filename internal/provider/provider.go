package provider

import (
	"fmt"
	"sync"
)

// Provider is the minimal contract every registered provider satisfies.
// Capabilities are discovered with type assertions against
// EmbeddingProvider and RerankingProvider.
type Provider interface {
	Name() string
}

type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

func (r *Registry) Register(name string, p Provider) error {
	if name == "" {
		return fmt.Errorf("provider name is required")
	}
	if p == nil {
		return fmt.Errorf("provider %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}

	r.providers[name] = p
	return nil
}

func (r *Registry) Get(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

var defaultRegistry = NewRegistry()

func Register(name string, p Provider) error {
	return defaultRegistry.Register(name, p)
}

func Get(name string) (Provider, bool) {
	return defaultRegistry.Get(name)
}
