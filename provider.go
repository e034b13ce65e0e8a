package iterables

import "context"

// Argument describes one spec key a provider understands. Argument lists are
// advisory metadata for help output; providers validate their own specs at
// generate time.
type Argument struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Provider is a pluggable item source. A provider is identified by its type
// key and produces a lazy sequence from an opaque spec. Generate itself must
// not touch the underlying source; all work happens inside the returned
// sequence so that spec errors and source errors alike surface on the first
// pull.
type Provider interface {
	// Type returns the unique type key the provider registers under.
	Type() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Arguments describes the spec keys the provider understands.
	Arguments() []Argument

	// Generate returns a lazy sequence of items for the given spec.
	Generate(ctx context.Context, spec map[string]any) Sequence
}

// GenerateFunc is the function form of a provider's Generate method.
type GenerateFunc func(ctx context.Context, spec map[string]any) Sequence

// ProviderFunc adapts a plain function into a Provider.
type ProviderFunc struct {
	typeKey     string
	description string
	arguments   []Argument
	fn          GenerateFunc
}

// NewProviderFunc creates a Provider from a generate function.
func NewProviderFunc(typeKey, description string, arguments []Argument, fn GenerateFunc) *ProviderFunc {
	return &ProviderFunc{
		typeKey:     typeKey,
		description: description,
		arguments:   arguments,
		fn:          fn,
	}
}

func (p *ProviderFunc) Type() string {
	return p.typeKey
}

func (p *ProviderFunc) Description() string {
	return p.description
}

func (p *ProviderFunc) Arguments() []Argument {
	return p.arguments
}

func (p *ProviderFunc) Generate(ctx context.Context, spec map[string]any) Sequence {
	return p.fn(ctx, spec)
}
