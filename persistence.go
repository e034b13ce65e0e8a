package iterables

import (
	"context"
)

// DefinitionPersister durably stores the full set of iterable definitions
// and reconstructs it on load. Timestamps round-trip as ISO-8601 strings in
// serialized form and as time.Time values in memory.
type DefinitionPersister interface {

	// SaveDefinitions persists a complete snapshot of the definitions.
	SaveDefinitions(ctx context.Context, definitions []*Definition) error

	// LoadDefinitions reconstructs the previously saved definitions.
	// A persister with nothing stored returns an empty slice, not an error.
	LoadDefinitions(ctx context.Context) ([]*Definition, error)
}
