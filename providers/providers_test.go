package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokenring-ai/iterables"
)

// collectItems drains a sequence, failing the test on any generation error.
func collectItems(t *testing.T, seq iterables.Sequence) []iterables.Item {
	t.Helper()
	var items []iterables.Item
	for item, err := range seq {
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

// collectError drains a sequence and returns the first generation error.
func collectError(t *testing.T, seq iterables.Sequence) error {
	t.Helper()
	for _, err := range seq {
		if err != nil {
			return err
		}
	}
	return nil
}

func TestAllProvidersHaveDistinctTypes(t *testing.T) {
	seen := map[string]bool{}
	for _, provider := range All() {
		require.NotEmpty(t, provider.Type())
		require.NotEmpty(t, provider.Description())
		require.False(t, seen[provider.Type()], "duplicate provider type %q", provider.Type())
		seen[provider.Type()] = true
	}
}

func TestRegisterAll(t *testing.T) {
	registry := iterables.NewRegistry()
	require.NoError(t, RegisterAll(registry))
	require.Equal(t,
		[]string{"glob", "json", "lines", "list", "range", "script", "sql"},
		registry.Types())

	// Re-registration conflicts.
	err := RegisterAll(registry)
	require.Error(t, err)
	require.True(t, iterables.IsErrorType(err, iterables.ErrorTypeProviderTypeConflict))
}

func TestRequiredArgumentsDeclared(t *testing.T) {
	required := map[string]string{
		"range":  "stop",
		"list":   "items",
		"glob":   "pattern",
		"lines":  "path",
		"json":   "path",
		"script": "code",
	}
	for _, provider := range All() {
		want, ok := required[provider.Type()]
		if !ok {
			continue
		}
		found := false
		for _, arg := range provider.Arguments() {
			if arg.Name == want {
				require.True(t, arg.Required, "%s: %q must be required", provider.Type(), want)
				found = true
			}
		}
		require.True(t, found, "%s: missing argument %q", provider.Type(), want)
	}
}

func TestSpecIntConversions(t *testing.T) {
	for name, spec := range map[string]map[string]any{
		"int":     {"stop": 3},
		"int64":   {"stop": int64(3)},
		"float64": {"stop": float64(3)},
		"string":  {"stop": "3"},
	} {
		t.Run(name, func(t *testing.T) {
			n, err := specInt(spec, "stop")
			require.NoError(t, err)
			require.Equal(t, 3, n)
		})
	}

	_, err := specInt(map[string]any{"stop": 2.5}, "stop")
	require.Error(t, err)

	_, err = specInt(map[string]any{"stop": "three"}, "stop")
	require.Error(t, err)

	_, err = specInt(map[string]any{}, "stop")
	require.Error(t, err)

	n, err := specIntDefault(map[string]any{}, "start", 7)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

var testCtx = context.Background()
