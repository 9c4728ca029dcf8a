package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roofsite/internal/models"
)

func TestClampPage(t *testing.T) {
	require.Equal(t, 1, ClampPage(0))
	require.Equal(t, 1, ClampPage(-4))
	require.Equal(t, 7, ClampPage(7))
	require.Equal(t, 1000, ClampPage(1000))
	require.Equal(t, 1000, ClampPage(5000))
}

func TestClampLimit(t *testing.T) {
	require.Equal(t, 1, ClampLimit(0))
	require.Equal(t, 20, ClampLimit(20))
	require.Equal(t, 100, ClampLimit(100))
	require.Equal(t, 100, ClampLimit(500))
}

func TestBuildRowsQuery(t *testing.T) {
	inspections := models.Table{Schema: "public", Name: "inspections"}
	orders := models.Table{Schema: "public", Name: "orders"}

	t.Run("default sort and offset", func(t *testing.T) {
		q := buildRowsQuery(orders, RowsParams{Page: 3, Limit: 25})

		require.Equal(t, `SELECT * FROM "public"."orders" ORDER BY created_at DESC LIMIT $1 OFFSET $2`, q.selectSQL)
		require.Equal(t, []any{25, 50}, q.selectArgs)
		require.Equal(t, `SELECT COUNT(*) AS count FROM "public"."orders"`, q.countSQL)
		require.Empty(t, q.countArgs)
	})

	t.Run("out of range page and limit are clamped", func(t *testing.T) {
		q := buildRowsQuery(orders, RowsParams{Page: 5000, Limit: 500})
		require.Equal(t, []any{100, 99900}, q.selectArgs)

		q = buildRowsQuery(orders, RowsParams{Page: 0, Limit: 0})
		require.Equal(t, []any{1, 0}, q.selectArgs)
	})

	t.Run("sort column and direction", func(t *testing.T) {
		q := buildRowsQuery(orders, RowsParams{Page: 1, Limit: 10, SortBy: "total", SortDir: "desc"})
		require.Contains(t, q.selectSQL, `ORDER BY "total" DESC`)

		q = buildRowsQuery(orders, RowsParams{Page: 1, Limit: 10, SortBy: "total", SortDir: "sideways"})
		require.Contains(t, q.selectSQL, `ORDER BY "total" ASC`)
	})

	t.Run("sort column is quoted as a single identifier", func(t *testing.T) {
		q := buildRowsQuery(orders, RowsParams{Page: 1, Limit: 10, SortBy: `x"; DROP TABLE orders; --`})
		require.Contains(t, q.selectSQL, `ORDER BY "x""; DROP TABLE orders; --" ASC`)
	})

	t.Run("search on inspections", func(t *testing.T) {
		q := buildRowsQuery(inspections, RowsParams{Page: 2, Limit: 10, Search: "  leak  "})

		require.Equal(t,
			`SELECT * FROM "public"."inspections" WHERE name ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1 OR message ILIKE $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
			q.selectSQL)
		require.Equal(t, []any{"%leak%", 10, 10}, q.selectArgs)
		require.Equal(t,
			`SELECT COUNT(*) AS count FROM "public"."inspections" WHERE name ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1 OR message ILIKE $1`,
			q.countSQL)
		require.Equal(t, []any{"%leak%"}, q.countArgs)
	})

	t.Run("search ignored for other tables", func(t *testing.T) {
		q := buildRowsQuery(orders, RowsParams{Page: 1, Limit: 10, Search: "leak"})
		require.NotContains(t, q.selectSQL, "WHERE")
		require.NotContains(t, q.countSQL, "WHERE")
		require.Empty(t, q.countArgs)
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		q := buildRowsQuery(inspections, RowsParams{Page: 1, Limit: 10, Search: "   "})
		require.NotContains(t, q.selectSQL, "WHERE")
	})
}

func TestJSONValue(t *testing.T) {
	id := uuid.New()
	require.Equal(t, id.String(), jsonValue([16]byte(id)))
	require.Equal(t, "plain", jsonValue("plain"))
	require.Equal(t, int64(4), jsonValue(int64(4)))
	require.Nil(t, jsonValue(nil))
}
