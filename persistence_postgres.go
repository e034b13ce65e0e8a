package iterables

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresDefinitionPersister stores definitions in a Postgres table. The
// caller owns the *sql.DB (typically opened with the lib/pq driver) and its
// lifecycle.
type PostgresDefinitionPersister struct {
	db    *sql.DB
	table string
}

// NewPostgresDefinitionPersister creates a Postgres-backed persister and
// ensures the backing table exists.
func NewPostgresDefinitionPersister(ctx context.Context, db *sql.DB, table string) (*PostgresDefinitionPersister, error) {
	if table == "" {
		table = "iterable_definitions"
	}
	p := &PostgresDefinitionPersister{db: db, table: table}
	if err := p.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PostgresDefinitionPersister) ensureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		spec JSONB NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`, p.table)
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create definitions table: %w", err)
	}
	return nil
}

// SaveDefinitions replaces the stored definition set with the given snapshot
// in a single transaction.
func (p *PostgresDefinitionPersister) SaveDefinitions(ctx context.Context, definitions []*Definition) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", p.table)); err != nil {
		return fmt.Errorf("failed to clear definitions table: %w", err)
	}
	insert := fmt.Sprintf(`INSERT INTO %s (name, type, spec, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, p.table)
	for _, def := range definitions {
		spec, err := json.Marshal(def.Spec)
		if err != nil {
			return fmt.Errorf("failed to marshal spec for %q: %w", def.Name, err)
		}
		if _, err := tx.ExecContext(ctx, insert,
			def.Name, def.Type, spec, def.Description, def.CreatedAt, def.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert definition %q: %w", def.Name, err)
		}
	}
	return tx.Commit()
}

// LoadDefinitions reads all stored definitions.
func (p *PostgresDefinitionPersister) LoadDefinitions(ctx context.Context) ([]*Definition, error) {
	query := fmt.Sprintf(`SELECT name, type, spec, description, created_at, updated_at
		FROM %s ORDER BY name`, p.table)
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query definitions: %w", err)
	}
	defer rows.Close()

	var definitions []*Definition
	for rows.Next() {
		var def Definition
		var spec []byte
		if err := rows.Scan(&def.Name, &def.Type, &spec, &def.Description, &def.CreatedAt, &def.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan definition: %w", err)
		}
		if err := json.Unmarshal(spec, &def.Spec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spec for %q: %w", def.Name, err)
		}
		definitions = append(definitions, &def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	if definitions == nil {
		definitions = []*Definition{}
	}
	return definitions, nil
}
