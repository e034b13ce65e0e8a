package providers

import (
	"context"
	"fmt"

	"github.com/tokenring-ai/iterables"
)

// RangeProvider yields integer counter items from start (inclusive) to stop
// (exclusive), advancing by step. Each item exposes the counter value as the
// "i" variable and the 0-based ordinal as "index".
type RangeProvider struct{}

func NewRangeProvider() *RangeProvider {
	return &RangeProvider{}
}

func (p *RangeProvider) Type() string {
	return "range"
}

func (p *RangeProvider) Description() string {
	return "Yields integers from start (inclusive) to stop (exclusive) by step"
}

func (p *RangeProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "stop", Type: "int", Description: "Exclusive upper bound", Required: true},
		{Name: "start", Type: "int", Description: "Inclusive lower bound (default 0)"},
		{Name: "step", Type: "int", Description: "Counter increment (default 1, may be negative)"},
	}
}

func (p *RangeProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	stop, err := specInt(spec, "stop")
	if err != nil {
		return iterables.SequenceError(err)
	}
	start, err := specIntDefault(spec, "start", 0)
	if err != nil {
		return iterables.SequenceError(err)
	}
	step, err := specIntDefault(spec, "step", 1)
	if err != nil {
		return iterables.SequenceError(err)
	}
	if step == 0 {
		return iterables.SequenceError(fmt.Errorf("spec key %q must not be zero", "step"))
	}
	return func(yield func(iterables.Item, error) bool) {
		index := 0
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			item := iterables.Item{
				Value:     i,
				Variables: map[string]any{"i": i, "index": index},
			}
			if !yield(item, nil) {
				return
			}
			index++
		}
	}
}
