package providers

import (
	"fmt"
	"strconv"
)

// specString reads a required string key from a provider spec.
func specString(spec map[string]any, key string) (string, error) {
	value, exists := spec[key]
	if !exists {
		return "", fmt.Errorf("spec key %q is required", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("spec key %q must be a string, got %T", key, value)
	}
	return s, nil
}

// specStringDefault reads an optional string key from a provider spec.
func specStringDefault(spec map[string]any, key, fallback string) (string, error) {
	value, exists := spec[key]
	if !exists {
		return fallback, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("spec key %q must be a string, got %T", key, value)
	}
	return s, nil
}

// specInt reads a required integer key from a provider spec. Numbers arrive
// as int, int64 or float64 depending on how the spec was built; strings are
// accepted for CLI-sourced specs.
func specInt(spec map[string]any, key string) (int, error) {
	value, exists := spec[key]
	if !exists {
		return 0, fmt.Errorf("spec key %q is required", key)
	}
	return toInt(key, value)
}

// specIntDefault reads an optional integer key from a provider spec.
func specIntDefault(spec map[string]any, key string, fallback int) (int, error) {
	value, exists := spec[key]
	if !exists {
		return fallback, nil
	}
	return toInt(key, value)
}

func toInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("spec key %q must be an integer, got %v", key, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("spec key %q must be an integer, got %q", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("spec key %q must be an integer, got %T", key, value)
	}
}
