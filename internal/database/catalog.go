package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"roofsite/internal/logging"
	"roofsite/internal/models"
)

// ErrInvalidTable is returned when a table name is not among the base tables
// reported by introspection.
var ErrInvalidTable = errors.New("invalid table name")

const listBaseTablesQuery = `
	SELECT table_schema, table_name
	FROM information_schema.tables
	WHERE table_type = 'BASE TABLE'
		AND table_schema NOT IN ('pg_catalog', 'information_schema')
	ORDER BY table_schema, table_name
`

// Browser lists and pages through arbitrary tables.
type Browser struct {
	db     DBTX
	logger zerolog.Logger
}

func NewBrowser(db DBTX, logger zerolog.Logger) *Browser {
	return &Browser{
		db:     db,
		logger: logging.Component(logger, "browser"),
	}
}

func (b *Browser) Tables(ctx context.Context) ([]models.Table, error) {
	rows, err := b.db.Query(ctx, listBaseTablesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.Schema, &t.Name); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}

// ListBaseTables is Tables with errors logged and reported as no tables.
func (b *Browser) ListBaseTables(ctx context.Context) []models.Table {
	tables, err := b.Tables(ctx)
	if err != nil {
		LogError(b.logger, "list_base_tables", err)
		return []models.Table{}
	}
	return tables
}

// resolveTable is the whitelist check. It must run before any table name is
// interpolated into SQL. When a name exists in several schemas the first one
// in schema order wins.
func (b *Browser) resolveTable(ctx context.Context, name string) (models.Table, error) {
	if name == "" {
		return models.Table{}, ErrInvalidTable
	}
	for _, t := range b.ListBaseTables(ctx) {
		if t.Name == name {
			return t, nil
		}
	}
	return models.Table{}, ErrInvalidTable
}
