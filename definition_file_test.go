package iterables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefinitionsString(t *testing.T) {
	data := `
definitions:
  - name: numbers
    type: range
    spec:
      stop: 3
    description: first three numbers
  - name: files
    type: glob
    spec:
      pattern: "*.md"
`
	definitions, err := LoadDefinitionsString(data)
	require.NoError(t, err)
	require.Len(t, definitions, 2)

	require.Equal(t, "numbers", definitions[0].Name)
	require.Equal(t, "range", definitions[0].Type)
	require.Equal(t, 3, definitions[0].Spec["stop"])
	require.Equal(t, "first three numbers", definitions[0].Description)

	require.Equal(t, "files", definitions[1].Name)
	require.Equal(t, "*.md", definitions[1].Spec["pattern"])
}

func TestLoadDefinitionsStringValidation(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := LoadDefinitionsString("definitions:\n  - type: range\n")
		require.Error(t, err)
		require.Contains(t, err.Error(), "name required")
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := LoadDefinitionsString("definitions:\n  - name: numbers\n")
		require.Error(t, err)
		require.Contains(t, err.Error(), "type required")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadDefinitionsString("definitions: [unclosed")
		require.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		definitions, err := LoadDefinitionsString("")
		require.NoError(t, err)
		require.Empty(t, definitions)
	})
}

func TestLoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iterables.yaml")
	content := "definitions:\n  - name: letters\n    type: list\n    spec:\n      items: [a, b]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	definitions, err := LoadDefinitionsFile(path)
	require.NoError(t, err)
	require.Len(t, definitions, 1)
	require.Equal(t, "letters", definitions[0].Name)

	_, err = LoadDefinitionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
