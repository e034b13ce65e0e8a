package iterables

import (
	"fmt"
	"strings"
)

// Interpolate resolves {path:default} tokens in template against the given
// variable bag and returns the result. It is a pure function.
//
// A token is "{" key (":" default)? "}". The key contains neither "}" nor
// ":"; the default, if present, contains no "}" but may contain further ":"
// characters. The key is split on "." and resolved by sequential lookup into
// nested maps. A lookup that hits a missing segment, a non-map intermediate
// value, or a nil result is undefined. Defined values are replaced by their
// string form; undefined tokens are replaced by their default when one was
// supplied, and otherwise left verbatim in the output.
func Interpolate(template string, variables map[string]any) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			// No closing brace: the rest of the template is literal text.
			b.WriteString(template[i:])
			break
		}
		token := template[i+1 : i+end]
		key, fallback, hasFallback := strings.Cut(token, ":")

		if value, ok := lookupVariable(variables, key); ok {
			b.WriteString(stringify(value))
		} else if hasFallback {
			b.WriteString(fallback)
		} else {
			b.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}

// lookupVariable resolves a dot-separated path against nested maps. It stops
// at the first missing segment or non-traversable intermediate value. A nil
// leaf counts as undefined.
func lookupVariable(variables map[string]any, path string) (any, bool) {
	var current any = variables
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := m[segment]
		if !exists {
			return nil, false
		}
		current = value
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// stringify returns the string form of a resolved variable value.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
