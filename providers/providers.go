// Package providers contains the built-in iterable providers: counters,
// static lists, filesystem globs, file lines, JSON documents, Risor scripts
// and SQL queries. The core iterables package never depends on this package;
// each provider is registered explicitly by the embedding application.
package providers

import (
	"github.com/tokenring-ai/iterables"
)

// All returns one instance of every built-in provider.
func All() []iterables.Provider {
	return []iterables.Provider{
		NewRangeProvider(),
		NewListProvider(),
		NewGlobProvider(),
		NewLinesProvider(),
		NewJSONProvider(),
		NewScriptProvider(),
		NewSQLProvider(),
	}
}

// RegisterAll registers every built-in provider with the given registry.
func RegisterAll(registry *iterables.Registry) error {
	for _, provider := range All() {
		if err := registry.Register(provider); err != nil {
			return err
		}
	}
	return nil
}
