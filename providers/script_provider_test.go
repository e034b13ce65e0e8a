package providers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptProvider(t *testing.T) {
	provider := NewScriptProvider()

	t.Run("list literal", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"code": `["alpha", "beta"]`,
		}))
		require.Len(t, items, 2)
		require.Equal(t, "alpha", items[0].Value)
		require.Equal(t, map[string]any{"item": "beta", "index": 1}, items[1].Variables)
	})

	t.Run("computed list", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"code": `[1, 2, 3].map(func(n) { n * 10 })`,
		}))
		require.Len(t, items, 3)
		require.Equal(t, int64(20), items[1].Value)
	})

	t.Run("map elements merge into variables", func(t *testing.T) {
		items := collectItems(t, provider.Generate(testCtx, map[string]any{
			"code": `[{"host": "db1", "port": 5432}]`,
		}))
		require.Len(t, items, 1)
		require.Equal(t, "db1", items[0].Variables["host"])
		require.Equal(t, int64(5432), items[0].Variables["port"])
	})

	t.Run("non-list result is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"code": `"scalar"`}))
		require.Error(t, err)
		require.Contains(t, err.Error(), "must evaluate to a list")
	})

	t.Run("evaluation failure is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"code": `undefined_name`}))
		require.Error(t, err)
	})

	t.Run("missing code is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{}))
		require.Error(t, err)
	})
}

func TestSQLProviderSpecValidation(t *testing.T) {
	provider := NewSQLProvider()

	t.Run("missing dsn is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"query": "SELECT 1"}))
		require.Error(t, err)
	})

	t.Run("missing query is an error", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{"dsn": "postgres://localhost/db"}))
		require.Error(t, err)
	})

	t.Run("unknown driver surfaces on pull", func(t *testing.T) {
		err := collectError(t, provider.Generate(testCtx, map[string]any{
			"dsn":    "dsn",
			"query":  "SELECT 1",
			"driver": "no-such-driver",
		}))
		require.Error(t, err)
	})
}
