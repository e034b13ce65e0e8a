package iterables

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// DefinitionStoreOptions configures a new DefinitionStore.
type DefinitionStoreOptions struct {
	Registry  *Registry
	Persister DefinitionPersister
	Logger    *slog.Logger
}

// DefinitionStore owns the persisted mapping from names to iterable
// definitions. It is the sole writer of Definition records: callers only
// ever see copies.
type DefinitionStore struct {
	registry    *Registry
	persister   DefinitionPersister
	logger      *slog.Logger
	mutex       sync.RWMutex
	definitions map[string]*Definition
}

// NewDefinitionStore creates a store and loads any previously persisted
// definitions. Loaded definitions may reference provider types that are not
// currently registered; that only becomes an error at generate time.
func NewDefinitionStore(ctx context.Context, opts DefinitionStoreOptions) (*DefinitionStore, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.Persister == nil {
		opts.Persister = NewNullDefinitionPersister()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store := &DefinitionStore{
		registry:    opts.Registry,
		persister:   opts.Persister,
		logger:      opts.Logger,
		definitions: map[string]*Definition{},
	}
	loaded, err := opts.Persister.LoadDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	for _, def := range loaded {
		store.definitions[def.Name] = def.Copy()
	}
	if len(loaded) > 0 {
		store.logger.Info("loaded iterable definitions", "count", len(loaded))
	}
	return store, nil
}

// Define creates or replaces the definition stored under name. It fails with
// an unknown provider type error if no provider is registered for typeKey.
// Redefining an existing name replaces its type, spec and description but
// preserves the original creation timestamp.
func (s *DefinitionStore) Define(ctx context.Context, name, typeKey string, spec map[string]any, description string) (*Definition, error) {
	if name == "" {
		return nil, NewUsageError("iterable name is required")
	}
	if _, ok := s.registry.Get(typeKey); !ok {
		return nil, NewUnknownProviderTypeError(typeKey)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	def := &Definition{
		Name:        name,
		Type:        typeKey,
		Spec:        copyMap(spec),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if prior, exists := s.definitions[name]; exists {
		def.CreatedAt = prior.CreatedAt
	}
	s.definitions[name] = def

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("defined iterable", "name", name, "type", typeKey)
	return def.Copy(), nil
}

// Import adds a batch of definition records, preserving their timestamps
// when present. Each record's provider type must be registered.
func (s *DefinitionStore) Import(ctx context.Context, definitions []*Definition) error {
	for _, def := range definitions {
		if def.Name == "" {
			return NewUsageError("imported definition is missing a name")
		}
		if _, ok := s.registry.Get(def.Type); !ok {
			return NewUnknownProviderTypeError(def.Type)
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	for _, def := range definitions {
		record := def.Copy()
		if record.CreatedAt.IsZero() {
			record.CreatedAt = now
		}
		if record.UpdatedAt.IsZero() {
			record.UpdatedAt = now
		}
		s.definitions[record.Name] = record
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	s.logger.Info("imported iterable definitions", "count", len(definitions))
	return nil
}

// load replaces the in-memory definition set without provider validation.
// Used to reconstruct stores from persistence snapshots in tests and tools.
func (s *DefinitionStore) load(definitions []*Definition) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.definitions = make(map[string]*Definition, len(definitions))
	for _, def := range definitions {
		s.definitions[def.Name] = def.Copy()
	}
}

// Get returns the definition stored under name.
func (s *DefinitionStore) Get(name string) (*Definition, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	def, exists := s.definitions[name]
	if !exists {
		return nil, NewUndefinedIterableError(name)
	}
	return def.Copy(), nil
}

// List returns all definitions sorted by name.
func (s *DefinitionStore) List() []*Definition {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	definitions := make([]*Definition, 0, len(s.definitions))
	for _, def := range s.definitions {
		definitions = append(definitions, def.Copy())
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})
	return definitions
}

// Delete removes the definition stored under name. It returns true if a
// record existed.
func (s *DefinitionStore) Delete(ctx context.Context, name string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.definitions[name]; !exists {
		return false, nil
	}
	delete(s.definitions, name)
	if err := s.save(ctx); err != nil {
		return false, err
	}
	s.logger.Info("deleted iterable", "name", name)
	return true, nil
}

// save persists the current snapshot. Callers must hold the mutex.
func (s *DefinitionStore) save(ctx context.Context) error {
	definitions := make([]*Definition, 0, len(s.definitions))
	for _, def := range s.definitions {
		definitions = append(definitions, def.Copy())
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})
	if err := s.persister.SaveDefinitions(ctx, definitions); err != nil {
		return fmt.Errorf("failed to persist definitions: %w", err)
	}
	return nil
}
