package iterables

import "context"

// NullDefinitionPersister is a no-op implementation. Definitions live only
// for the lifetime of the process.
type NullDefinitionPersister struct{}

func NewNullDefinitionPersister() *NullDefinitionPersister {
	return &NullDefinitionPersister{}
}

func (p *NullDefinitionPersister) SaveDefinitions(ctx context.Context, definitions []*Definition) error {
	return nil
}

func (p *NullDefinitionPersister) LoadDefinitions(ctx context.Context) ([]*Definition, error) {
	return []*Definition{}, nil
}
