package iterables

import "iter"

// Item is one unit of work produced by a provider. Value is the item itself;
// Variables is the bag consumed by template interpolation.
type Item struct {
	Value     any            `json:"value"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Sequence is a lazy, ordered stream of items. Nothing is produced until the
// consumer pulls, and a consumer that stops ranging stops production. A
// non-nil error ends the sequence; no further items follow it.
type Sequence = iter.Seq2[Item, error]

// SequenceOf returns a sequence that yields the given items in order.
func SequenceOf(items ...Item) Sequence {
	return func(yield func(Item, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// SequenceError returns a sequence that immediately fails with err.
func SequenceError(err error) Sequence {
	return func(yield func(Item, error) bool) {
		yield(Item{}, err)
	}
}
