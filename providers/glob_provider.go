package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tokenring-ai/iterables"
)

// GlobProvider yields one item per filesystem path matching a glob pattern.
// Variables: "file" (full path), "name" (base name), "stem" (base name
// without extension), "dir", "ext" and "index".
type GlobProvider struct{}

func NewGlobProvider() *GlobProvider {
	return &GlobProvider{}
}

func (p *GlobProvider) Type() string {
	return "glob"
}

func (p *GlobProvider) Description() string {
	return "Yields filesystem paths matching a glob pattern"
}

func (p *GlobProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "pattern", Type: "string", Description: "Glob pattern, e.g. ./docs/*.md", Required: true},
	}
}

func (p *GlobProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	pattern, err := specString(spec, "pattern")
	if err != nil {
		return iterables.SequenceError(err)
	}
	return func(yield func(iterables.Item, error) bool) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		for index, path := range matches {
			name := filepath.Base(path)
			ext := filepath.Ext(path)
			item := iterables.Item{
				Value: path,
				Variables: map[string]any{
					"file":  path,
					"name":  name,
					"stem":  strings.TrimSuffix(name, ext),
					"dir":   filepath.Dir(path),
					"ext":   ext,
					"index": index,
				},
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
