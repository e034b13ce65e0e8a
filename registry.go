package iterables

import (
	"sort"
	"sync"
)

// Registry maps provider type keys to providers. Registration of an existing
// key is an explicit conflict rather than a silent overwrite.
type Registry struct {
	mutex     sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register stores the provider under its type key. It fails with a
// provider type conflict error if the key is already taken.
func (r *Registry) Register(provider Provider) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	typeKey := provider.Type()
	if _, exists := r.providers[typeKey]; exists {
		return NewProviderTypeConflictError(typeKey)
	}
	r.providers[typeKey] = provider
	return nil
}

// MustRegister registers the provider and panics on conflict. Intended for
// process init wiring where a conflict is a programming error.
func (r *Registry) MustRegister(provider Provider) {
	if err := r.Register(provider); err != nil {
		panic(err)
	}
}

// Get returns the provider registered for the given type key. The second
// return value reports whether a provider was found; Get never fails.
func (r *Registry) Get(typeKey string) (Provider, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	provider, ok := r.providers[typeKey]
	return provider, ok
}

// Types returns the sorted type keys of all registered providers.
func (r *Registry) Types() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keys := make([]string, 0, len(r.providers))
	for key := range r.providers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
