package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"roofsite/internal/models"
)

const (
	MaxPage         = 1000
	MaxLimit        = 100
	DefaultPage     = 1
	DefaultLimit    = 20
	DefaultSample   = 10
	searchableTable = "inspections"
)

var searchColumns = []string{"name", "phone", "address", "message"}

type RowsParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
	Search  string
}

func ClampPage(page int) int {
	return clamp(page, 1, MaxPage)
}

func ClampLimit(limit int) int {
	return clamp(limit, 1, MaxLimit)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type rowsQuery struct {
	selectSQL  string
	selectArgs []any
	countSQL   string
	countArgs  []any
}

func buildRowsQuery(t models.Table, p RowsParams) rowsQuery {
	page := ClampPage(p.Page)
	limit := ClampLimit(p.Limit)
	offset := (page - 1) * limit

	from := pgx.Identifier{t.Schema, t.Name}.Sanitize()

	var where string
	var filterArgs []any
	if term := strings.TrimSpace(p.Search); term != "" && t.Name == searchableTable {
		conds := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			conds[i] = fmt.Sprintf("%s ILIKE $1", col)
		}
		where = " WHERE " + strings.Join(conds, " OR ")
		filterArgs = append(filterArgs, "%"+term+"%")
	}

	order := " ORDER BY created_at DESC"
	if p.SortBy != "" {
		dir := "ASC"
		if p.SortDir == "desc" {
			dir = "DESC"
		}
		order = fmt.Sprintf(" ORDER BY %s %s", pgx.Identifier{p.SortBy}.Sanitize(), dir)
	}

	n := len(filterArgs)
	selectSQL := fmt.Sprintf("SELECT * FROM %s%s%s LIMIT $%d OFFSET $%d", from, where, order, n+1, n+2)
	countSQL := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s%s", from, where)

	selectArgs := append(append([]any{}, filterArgs...), limit, offset)

	return rowsQuery{
		selectSQL:  selectSQL,
		selectArgs: selectArgs,
		countSQL:   countSQL,
		countArgs:  filterArgs,
	}
}

// Rows returns one page of table together with the filtered row count. The
// page and the count are fetched concurrently.
func (b *Browser) Rows(ctx context.Context, table string, p RowsParams) (*models.RowsResult, error) {
	t, err := b.resolveTable(ctx, table)
	if err != nil {
		return nil, err
	}

	q := buildRowsQuery(t, p)

	var records []map[string]any
	var columns []string
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, columns, err = b.collect(gctx, q.selectSQL, q.selectArgs...)
		return err
	})
	g.Go(func() error {
		return b.db.QueryRow(gctx, q.countSQL, q.countArgs...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.RowsResult{
		Rows:       records,
		TotalCount: total,
		Columns:    columns,
	}, nil
}

// Sample returns the first limit rows of table in storage order.
func (b *Browser) Sample(ctx context.Context, table string, limit int) (*models.RowsResult, error) {
	t, err := b.resolveTable(ctx, table)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s LIMIT $1", pgx.Identifier{t.Schema, t.Name}.Sanitize())
	records, columns, err := b.collect(ctx, query, ClampLimit(limit))
	if err != nil {
		return nil, err
	}

	return &models.RowsResult{
		Rows:       records,
		TotalCount: int64(len(records)),
		Columns:    columns,
	}, nil
}

func (b *Browser) collect(ctx context.Context, query string, args ...any) ([]map[string]any, []string, error) {
	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	records := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		record := make(map[string]any, len(values))
		for i, v := range values {
			record[names[i]] = jsonValue(v)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	columns := []string{}
	if len(records) > 0 {
		columns = names
	}

	return records, columns, nil
}

// jsonValue rewrites driver values that do not encode sensibly as JSON.
func jsonValue(v any) any {
	switch x := v.(type) {
	case [16]byte:
		return uuid.UUID(x).String()
	default:
		return v
	}
}
