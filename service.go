package iterables

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ServiceOptions configures a new Service.
type ServiceOptions struct {
	Registry *Registry
	Store    *DefinitionStore
	Logger   *slog.Logger
}

// Service composes the provider registry and the definition store. It is the
// front door for defining iterables and generating their items.
type Service struct {
	registry *Registry
	store    *DefinitionStore
	logger   *slog.Logger
}

// NewService creates a new iterable service.
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		registry: opts.Registry,
		store:    opts.Store,
		logger:   opts.Logger,
	}, nil
}

// Registry returns the provider registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Define creates or replaces a named iterable definition.
func (s *Service) Define(ctx context.Context, name, typeKey string, spec map[string]any, description string) (*Definition, error) {
	return s.store.Define(ctx, name, typeKey, spec, description)
}

// Get returns the definition stored under name.
func (s *Service) Get(name string) (*Definition, error) {
	return s.store.Get(name)
}

// List returns all definitions sorted by name.
func (s *Service) List() []*Definition {
	return s.store.List()
}

// Delete removes the definition stored under name, reporting whether a
// record existed.
func (s *Service) Delete(ctx context.Context, name string) (bool, error) {
	return s.store.Delete(ctx, name)
}

// Generate resolves the named definition and its provider, then delegates to
// the provider. The provider's sequence is forwarded unmodified: no
// buffering, no eager materialization, no error wrapping. Whatever
// cardinality and failure timing the provider produces is what the consumer
// observes.
func (s *Service) Generate(ctx context.Context, name string) (Sequence, error) {
	def, err := s.store.Get(name)
	if err != nil {
		return nil, err
	}
	provider, ok := s.registry.Get(def.Type)
	if !ok {
		return nil, NewDanglingProviderError(name, def.Type)
	}
	s.logger.Debug("generating items", "name", name, "type", def.Type)
	return provider.Generate(ctx, def.Spec), nil
}
