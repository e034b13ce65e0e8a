package providers

import (
	"context"
	"fmt"

	"github.com/tokenring-ai/iterables"
)

// ListProvider yields the entries of a static "items" list from its spec.
// Each item exposes "item" and "index" variables; entries that are maps are
// additionally merged into the variable bag so their fields can be addressed
// directly in templates.
type ListProvider struct{}

func NewListProvider() *ListProvider {
	return &ListProvider{}
}

func (p *ListProvider) Type() string {
	return "list"
}

func (p *ListProvider) Description() string {
	return "Yields the entries of a static list stored in the definition spec"
}

func (p *ListProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "items", Type: "list", Description: "Entries to yield, in order", Required: true},
	}
}

func (p *ListProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	value, exists := spec["items"]
	if !exists {
		return iterables.SequenceError(fmt.Errorf("spec key %q is required", "items"))
	}
	items, ok := value.([]any)
	if !ok {
		return iterables.SequenceError(fmt.Errorf("spec key %q must be a list, got %T", "items", value))
	}
	return func(yield func(iterables.Item, error) bool) {
		for index, entry := range items {
			if !yield(listItem(entry, index), nil) {
				return
			}
		}
	}
}

func listItem(entry any, index int) iterables.Item {
	variables := map[string]any{"item": entry, "index": index}
	if fields, ok := entry.(map[string]any); ok {
		for key, value := range fields {
			variables[key] = value
		}
	}
	return iterables.Item{Value: entry, Variables: variables}
}
