package iterables

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInterpolate(t *testing.T) {
	t.Run("simple variable", func(t *testing.T) {
		result := Interpolate("hello {name}", map[string]any{"name": "world"})
		require.Equal(t, "hello world", result)
	})

	t.Run("nested path with default resolves value", func(t *testing.T) {
		result := Interpolate("{a.b:z}", map[string]any{"a": map[string]any{"b": 5}})
		require.Equal(t, "5", result)
	})

	t.Run("nested path falls back to default", func(t *testing.T) {
		result := Interpolate("{a.b:z}", map[string]any{"a": map[string]any{}})
		require.Equal(t, "z", result)
	})

	t.Run("missing variable without default echoes literally", func(t *testing.T) {
		result := Interpolate("{missing}", map[string]any{})
		require.Equal(t, "{missing}", result)
	})

	t.Run("deeply nested missing path echoes literally", func(t *testing.T) {
		result := Interpolate("{a.b.c.d}", map[string]any{"a": map[string]any{"b": map[string]any{}}})
		require.Equal(t, "{a.b.c.d}", result)
	})

	t.Run("non-traversable intermediate is undefined", func(t *testing.T) {
		result := Interpolate("{a.b:fallback}", map[string]any{"a": "not a map"})
		require.Equal(t, "fallback", result)
	})

	t.Run("nil value is undefined", func(t *testing.T) {
		result := Interpolate("{a:fallback}", map[string]any{"a": nil})
		require.Equal(t, "fallback", result)
	})

	t.Run("multiple tokens", func(t *testing.T) {
		vars := map[string]any{"n": 3, "file": "a.txt"}
		result := Interpolate("run {n} on {file} keep {other}", vars)
		require.Equal(t, "run 3 on a.txt keep {other}", result)
	})

	t.Run("default may contain colons", func(t *testing.T) {
		result := Interpolate("{url:http://localhost:8080}", map[string]any{})
		require.Equal(t, "http://localhost:8080", result)
	})

	t.Run("empty default", func(t *testing.T) {
		result := Interpolate("a{missing:}b", map[string]any{})
		require.Equal(t, "ab", result)
	})

	t.Run("unterminated token is literal text", func(t *testing.T) {
		result := Interpolate("before {name", map[string]any{"name": "x"})
		require.Equal(t, "before {name", result)
	})

	t.Run("no tokens returns template unchanged", func(t *testing.T) {
		result := Interpolate("plain text, no tokens", nil)
		require.Equal(t, "plain text, no tokens", result)
	})

	t.Run("boolean and numeric string forms", func(t *testing.T) {
		vars := map[string]any{"ok": true, "ratio": 0.5}
		require.Equal(t, "true 0.5", Interpolate("{ok} {ratio}", vars))
	})

	t.Run("float values without fraction render as integers", func(t *testing.T) {
		// JSON-sourced variable bags carry numbers as float64.
		result := Interpolate("n={n}", map[string]any{"n": float64(7)})
		require.Equal(t, "n=7", result)
	})
}

func TestInterpolateProperties(t *testing.T) {
	t.Run("templates without braces are unchanged", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			template := rapid.StringMatching(`[^{}]*`).Draw(t, "template")
			require.Equal(t, template, Interpolate(template, map[string]any{"x": 1}))
		})
	})

	t.Run("defined keys always substitute their value", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			key := rapid.StringMatching(`[a-z][a-z0-9_]*`).Draw(t, "key")
			value := rapid.StringMatching(`[^{}]*`).Draw(t, "value")
			result := Interpolate("<{"+key+"}>", map[string]any{key: value})
			require.Equal(t, "<"+value+">", result)
		})
	})

	t.Run("undefined keys with a default substitute the default", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			key := rapid.StringMatching(`[a-z][a-z0-9_.]*[a-z0-9]`).Draw(t, "key")
			fallback := rapid.StringMatching(`[^{}]*`).Draw(t, "fallback")
			result := Interpolate("{"+key+":"+fallback+"}", map[string]any{})
			require.Equal(t, fallback, result)
		})
	})
}
