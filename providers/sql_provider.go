package providers

import (
	"context"
	"database/sql"

	// Register the Postgres driver for the default "postgres" spec value.
	_ "github.com/lib/pq"

	"github.com/tokenring-ai/iterables"
)

// SQLProvider streams the rows of a SQL query as items. The connection is
// opened on the first pull and closed when iteration ends, so defining a
// SQL-backed iterable has no cost until it is actually run. Each row's
// columns become the item's variables; the full column map is the value.
type SQLProvider struct{}

func NewSQLProvider() *SQLProvider {
	return &SQLProvider{}
}

func (p *SQLProvider) Type() string {
	return "sql"
}

func (p *SQLProvider) Description() string {
	return "Streams the rows of a SQL query"
}

func (p *SQLProvider) Arguments() []iterables.Argument {
	return []iterables.Argument{
		{Name: "dsn", Type: "string", Description: "Database connection string", Required: true},
		{Name: "query", Type: "string", Description: "Query whose rows become items", Required: true},
		{Name: "driver", Type: "string", Description: "database/sql driver name (default postgres)"},
	}
}

func (p *SQLProvider) Generate(ctx context.Context, spec map[string]any) iterables.Sequence {
	dsn, err := specString(spec, "dsn")
	if err != nil {
		return iterables.SequenceError(err)
	}
	query, err := specString(spec, "query")
	if err != nil {
		return iterables.SequenceError(err)
	}
	driver, err := specStringDefault(spec, "driver", "postgres")
	if err != nil {
		return iterables.SequenceError(err)
	}
	return func(yield func(iterables.Item, error) bool) {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		defer db.Close()

		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			yield(iterables.Item{}, err)
			return
		}
		index := 0
		for rows.Next() {
			values := make([]any, len(columns))
			pointers := make([]any, len(columns))
			for i := range values {
				pointers[i] = &values[i]
			}
			if err := rows.Scan(pointers...); err != nil {
				yield(iterables.Item{}, err)
				return
			}
			variables := make(map[string]any, len(columns)+1)
			for i, column := range columns {
				variables[column] = normalizeSQLValue(values[i])
			}
			variables["index"] = index
			item := iterables.Item{Value: copyVariables(variables), Variables: variables}
			if !yield(item, nil) {
				return
			}
			index++
		}
		if err := rows.Err(); err != nil {
			yield(iterables.Item{}, err)
		}
	}
}

// normalizeSQLValue converts driver byte slices to strings so row values
// interpolate cleanly.
func normalizeSQLValue(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}

func copyVariables(m map[string]any) map[string]any {
	copied := make(map[string]any, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}
