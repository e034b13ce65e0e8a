package iterables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionsDocument is the YAML document shape for bulk definition files.
type definitionsDocument struct {
	Definitions []*Definition `yaml:"definitions"`
}

// LoadDefinitionsFile loads a set of iterable definitions from a YAML file.
// The document has a single top-level "definitions" list.
func LoadDefinitionsFile(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return LoadDefinitionsString(string(data))
}

// LoadDefinitionsString loads a set of iterable definitions from a YAML
// string.
func LoadDefinitionsString(data string) ([]*Definition, error) {
	var doc definitionsDocument
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions file: %w", err)
	}
	for _, def := range doc.Definitions {
		if def.Name == "" {
			return nil, fmt.Errorf("definition name required")
		}
		if def.Type == "" {
			return nil, fmt.Errorf("definition %q: type required", def.Name)
		}
	}
	return doc.Definitions, nil
}
