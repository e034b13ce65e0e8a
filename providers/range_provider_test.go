package providers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tokenring-ai/iterables"
)

func TestRangeProvider(t *testing.T) {
	provider := NewRangeProvider()

	t.Run("counts from zero", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{"stop": 3}))
		require.Len(t, items, 3)
		for i, item := range items {
			require.Equal(t, i, item.Value)
			require.Equal(t, map[string]any{"i": i, "index": i}, item.Variables)
		}
	})

	t.Run("custom start and step", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"start": 10, "stop": 16, "step": 2,
		}))
		require.Len(t, items, 3)
		require.Equal(t, 10, items[0].Value)
		require.Equal(t, 12, items[1].Value)
		require.Equal(t, 14, items[2].Value)
		require.Equal(t, 2, items[2].Variables["index"])
	})

	t.Run("negative step counts down", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"start": 3, "stop": 0, "step": -1,
		}))
		require.Len(t, items, 3)
		require.Equal(t, 3, items[0].Value)
		require.Equal(t, 1, items[2].Value)
	})

	t.Run("empty range", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{"start": 5, "stop": 5}))
		require.Empty(t, items)
	})

	t.Run("zero step is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"stop": 3, "step": 0}))
		require.Error(t, err)
	})

	t.Run("missing stop is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{}))
		require.Error(t, err)
	})

	t.Run("json-sourced floats are accepted", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{"stop": float64(2)}))
		require.Len(t, items, 2)
	})
}

func TestListProvider(t *testing.T) {
	provider := NewListProvider()

	t.Run("yields entries in order", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"items": []any{"a", "b", "c"},
		}))
		require.Len(t, items, 3)
		require.Equal(t, "b", items[1].Value)
		require.Equal(t, map[string]any{"item": "b", "index": 1}, items[1].Variables)
	})

	t.Run("map entries merge into variables", func(t *testing.T) {
		entry := map[string]any{"name": "alpha", "priority": 1}
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"items": []any{entry},
		}))
		require.Len(t, items, 1)
		require.Equal(t, "alpha", items[0].Variables["name"])
		require.Equal(t, 1, items[0].Variables["priority"])
		require.Equal(t, entry, items[0].Variables["item"])

		// Templates can address merged fields directly.
		prompt := iterables.Interpolate("deploy {name} at P{priority}", items[0].Variables)
		require.Equal(t, "deploy alpha at P1", prompt)
	})

	t.Run("missing items is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{}))
		require.Error(t, err)
	})

	t.Run("non-list items is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"items": "a,b"}))
		require.Error(t, err)
	})

	t.Run("empty list yields nothing", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{"items": []any{}}))
		require.Empty(t, items)
	})
}
