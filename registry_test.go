package iterables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testProvider(typeKey string, items ...Item) Provider {
	return NewProviderFunc(typeKey, "test provider", nil,
		func(ctx context.Context, spec map[string]any) Sequence {
			return SequenceOf(items...)
		})
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	provider := testProvider("range")
	require.NoError(t, registry.Register(provider))

	got, ok := registry.Get("range")
	require.True(t, ok)
	require.Equal(t, provider, got)

	_, ok = registry.Get("unknown")
	require.False(t, ok)
}

func TestRegistryConflict(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(testProvider("range")))

	err := registry.Register(testProvider("range"))
	require.Error(t, err)
	require.True(t, IsErrorType(err, ErrorTypeProviderTypeConflict))

	require.Panics(t, func() {
		registry.MustRegister(testProvider("range"))
	})
}

func TestRegistryTypes(t *testing.T) {
	registry := NewRegistry()
	require.Empty(t, registry.Types())

	require.NoError(t, registry.Register(testProvider("list")))
	require.NoError(t, registry.Register(testProvider("glob")))
	require.NoError(t, registry.Register(testProvider("range")))
	require.Equal(t, []string{"glob", "list", "range"}, registry.Types())
}
