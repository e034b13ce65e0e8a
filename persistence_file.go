package iterables

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileDefinitionPersister is a file-based implementation that persists
// definitions to a single JSON document on disk.
type FileDefinitionPersister struct {
	path string
}

// NewFileDefinitionPersister creates a new file-based persister. The parent
// directory is created if it does not exist.
func NewFileDefinitionPersister(path string) (*FileDefinitionPersister, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".tokenring", "iterables", "definitions.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", filepath.Dir(path), err)
	}
	return &FileDefinitionPersister{path: path}, nil
}

// SaveDefinitions writes the full definition set as JSON. The write goes
// through a temporary file and rename so a crash never leaves a truncated
// document behind.
func (p *FileDefinitionPersister) SaveDefinitions(ctx context.Context, definitions []*Definition) error {
	data, err := json.MarshalIndent(definitions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal definitions: %w", err)
	}
	tmpPath := p.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write definitions file: %w", err)
	}
	if err := os.Rename(tmpPath, p.path); err != nil {
		return fmt.Errorf("failed to replace definitions file: %w", err)
	}
	return nil
}

// LoadDefinitions reads the definition set from disk. A missing file is not
// an error; it simply means nothing has been defined yet.
func (p *FileDefinitionPersister) LoadDefinitions(ctx context.Context) ([]*Definition, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Definition{}, nil
		}
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	var definitions []*Definition
	if err := json.Unmarshal(data, &definitions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions file: %w", err)
	}
	return definitions, nil
}
