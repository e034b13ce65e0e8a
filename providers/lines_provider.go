package providers

import (
	"bufio"
	"context"
	"os"

	"github.com/tokenring-ai/iterables"
)

// LinesProvider streams the lines of a text file, one item per line. The
// file is opened on the first pull and read incrementally, so arbitrarily
// large files never get buffered in full. Variables: "line" and "index".
type LinesProvider struct{}

func NewLinesProvider() *LinesProvider {
	return &LinesProvider{}
}

func (p *LinesProvider) Type() string {
	return "lines"
}

func (p *LinesProvider) Description() string {
	return "Streams the lines of a text file"
}

func (p *LinesProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "path", Type: "string", Description: "Path of the text file to read", Required: true},
	}
}

func (p *LinesProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	path, err := specString(spec, "path")
	if err != nil {
		return iterables.SequenceError(err)
	}
	return func(yield func(iterables.Item, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		index := 0
		for scanner.Scan() {
			item := iterables.Item{
				Value:     scanner.Text(),
				Variables: map[string]any{"line": scanner.Text(), "index": index},
			}
			if !yield(item, nil) {
				return
			}
			index++
		}
		if err := scanner.Err(); err != nil {
			yield(iterables.Item{}, err)
		}
	}
}
