package iterables

import "time"

// Definition is a stored iterable definition: a named descriptor of a data
// source, owned exclusively by the DefinitionStore. The Spec payload is
// opaque to the core; its interpretation belongs to the owning provider.
// This struct is designed to be fully JSON serializable.
type Definition struct {
	Name        string         `json:"name" yaml:"name"`
	Type        string         `json:"type" yaml:"type"`
	Spec        map[string]any `json:"spec" yaml:"spec"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"updated_at"`
}

// Copy returns a copy of the definition with its own spec map.
func (d *Definition) Copy() *Definition {
	return &Definition{
		Name:        d.Name,
		Type:        d.Type,
		Spec:        copyMap(d.Spec),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// copyMap creates a shallow copy of a map
func copyMap(m map[string]any) map[string]any {
	copied := make(map[string]any, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}

// copyDefinitions creates a copy of a definitions map
func copyDefinitions(m map[string]*Definition) map[string]*Definition {
	copied := make(map[string]*Definition, len(m))
	for k, v := range m {
		copied[k] = v.Copy()
	}
	return copied
}
