package providers

import (
	"context"
	"fmt"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
	"github.com/tokenring-ai/iterables"
)

// ScriptProvider evaluates a Risor expression from the spec's "code" key and
// yields one item per element of the resulting list. Map elements are merged
// into the item's variable bag like list entries.
type ScriptProvider struct{}

func NewScriptProvider() *ScriptProvider {
	return &ScriptProvider{}
}

func (p *ScriptProvider) Type() string {
	return "script"
}

func (p *ScriptProvider) Description() string {
	return "Yields the elements of a list produced by a Risor expression"
}

func (p *ScriptProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "code", Type: "string", Description: "Risor expression evaluating to a list", Required: true},
	}
}

func (p *ScriptProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	code, err := specString(spec, "code")
	if err != nil {
		return iterables.SequenceError(err)
	}
	return func(yield func(iterables.Item, error) bool) {
		result, err := risor.Eval(ctx, code)
		if err != nil {
			yield(iterables.Item{}, fmt.Errorf("failed to evaluate script: %w", err))
			return
		}
		list, ok := result.(*object.List)
		if !ok {
			yield(iterables.Item{}, fmt.Errorf("script must evaluate to a list, got %s", result.Type()))
			return
		}
		for index, element := range list.Value() {
			if !yield(listItem(scriptValueToGo(element), index), nil) {
				return
			}
		}
	}
}

// scriptValueToGo converts a Risor object to a plain Go value.
func scriptValueToGo(obj object.Object) any {
	switch o := obj.(type) {
	case *object.String:
		return o.Value()
	case *object.Int:
		return o.Value()
	case *object.Float:
		return o.Value()
	case *object.Bool:
		return o.Value()
	case *object.Time:
		return o.Value()
	case *object.NilType:
		return nil
	case *object.List:
		var result []any
		for _, item := range o.Value() {
			result = append(result, scriptValueToGo(item))
		}
		return result
	case *object.Map:
		result := make(map[string]any)
		for key, value := range o.Value() {
			result[key] = scriptValueToGo(value)
		}
		return result
	default:
		// Fallback to string representation
		return obj.Inspect()
	}
}
