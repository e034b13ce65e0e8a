package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tokenring-ai/iterables"
)

// JSONProvider yields the elements of a JSON array read from a file. An
// optional "key" selects a top-level field holding the array when the
// document root is an object. Elements get the same variable treatment as
// list entries.
type JSONProvider struct{}

func NewJSONProvider() *JSONProvider {
	return &JSONProvider{}
}

func (p *JSONProvider) Type() string {
	return "json"
}

func (p *JSONProvider) Description() string {
	return "Yields the elements of a JSON array read from a file"
}

func (p *JSONProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "path", Type: "string", Description: "Path of the JSON document", Required: true},
		{Name: "key", Type: "string", Description: "Top-level field holding the array (when the root is an object)"},
	}
}

func (p *JSONProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	path, err := specString(spec, "path")
	if err != nil {
		return iterables.SequenceError(err)
	}
	key, err := specStringDefault(spec, "key", "")
	if err != nil {
		return iterables.SequenceError(err)
	}
	return func(yield func(iterables.Item, error) bool) {
		data, err := os.ReadFile(path)
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		var root any
		if err := json.Unmarshal(data, &root); err != nil {
			yield(iterables.Item{}, fmt.Errorf("failed to parse %s: %w", path, err))
			return
		}
		if key != "" {
			obj, ok := root.(map[string]any)
			if !ok {
				yield(iterables.Item{}, fmt.Errorf("%s: document root is not an object, cannot select key %q", path, key))
				return
			}
			root, ok = obj[key]
			if !ok {
				yield(iterables.Item{}, fmt.Errorf("%s: key %q not found", path, key))
				return
			}
		}
		elements, ok := root.([]any)
		if !ok {
			yield(iterables.Item{}, fmt.Errorf("%s: expected a JSON array, got %T", path, root))
			return
		}
		for index, element := range elements {
			if !yield(listItem(element, index), nil) {
				return
			}
		}
	}
}
