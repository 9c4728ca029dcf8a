package api

import (
	"errors"
	"net/http"
	"strconv"

	"roofsite/internal/database"
	"roofsite/internal/models"
)

type PingResponse struct {
	OK     bool   `json:"ok" example:"true"`
	Driver string `json:"driver" example:"postgresql"`
}

type TablesResponse struct {
	OK     bool           `json:"ok" example:"true"`
	Driver string         `json:"driver" example:"postgresql"`
	Tables []models.Table `json:"tables"`
}

type RowsResponse struct {
	OK bool `json:"ok" example:"true"`
	*models.RowsResult
}

// @Summary      Database ping
// @Tags         admin
// @Produce      json
// @Success      200  {object}  PingResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  dbErrorResponse
// @Router       /admin-db-ping [get]
func (s *Server) AdminDBPingHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := s.health.Ping(r.Context())
	if err != nil {
		writeDBError(w, s.log(r), "DB_PING_ERROR", err)
		return
	}
	writeJSON(w, http.StatusOK, PingResponse{OK: ok, Driver: driverName})
}

// @Summary      List base tables
// @Tags         admin
// @Produce      json
// @Success      200  {object}  TablesResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  dbErrorResponse
// @Router       /admin-tables [get]
func (s *Server) AdminTablesHandler(w http.ResponseWriter, r *http.Request) {
	tables, err := s.browser.Tables(r.Context())
	if err != nil {
		writeDBError(w, s.log(r), "LIST_TABLES_ERROR", err)
		return
	}
	writeJSON(w, http.StatusOK, TablesResponse{OK: true, Driver: driverName, Tables: nonNil(tables)})
}

// @Summary      Browse table data
// @Description  action=tables lists base tables. action=rows pages through one table; search (q) only applies to inspections.
// @Tags         admin
// @Produce      json
// @Param        action   query     string  false  "tables or rows"  default(tables)
// @Param        table    query     string  false  "table name, required for rows"
// @Param        page     query     int     false  "page, clamped to 1..1000"  default(1)
// @Param        limit    query     int     false  "page size, clamped to 1..100"  default(20)
// @Param        sortBy   query     string  false  "sort column, default created_at"
// @Param        sortDir  query     string  false  "asc or desc"
// @Param        q        query     string  false  "search term"
// @Success      200      {object}  RowsResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      500      {object}  dbErrorResponse
// @Router       /admin-data [get]
func (s *Server) AdminDataHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	action := query.Get("action")
	if action == "" {
		action = "tables"
	}

	switch action {
	case "tables":
		tables := s.browser.ListBaseTables(r.Context())
		w.Header().Set("X-Robots-Tag", "noindex, nofollow")
		writeJSON(w, http.StatusOK, TablesResponse{OK: true, Driver: driverName, Tables: nonNil(tables)})

	case "rows":
		table := query.Get("table")
		if table == "" {
			writeError(w, http.StatusBadRequest, "Table parameter required")
			return
		}

		params := database.RowsParams{
			Page:    intParam(query.Get("page"), database.DefaultPage),
			Limit:   intParam(query.Get("limit"), database.DefaultLimit),
			SortBy:  query.Get("sortBy"),
			SortDir: query.Get("sortDir"),
			Search:  query.Get("q"),
		}

		result, err := s.browser.Rows(r.Context(), table, params)
		if err != nil {
			if errors.Is(err, database.ErrInvalidTable) {
				writeError(w, http.StatusBadRequest, "Invalid table name")
				return
			}
			writeDBError(w, s.log(r), "ROWS_ERROR", err)
			return
		}
		w.Header().Set("X-Robots-Tag", "noindex, nofollow")
		writeJSON(w, http.StatusOK, RowsResponse{OK: true, RowsResult: result})

	default:
		writeError(w, http.StatusBadRequest, "Invalid action")
	}
}

// @Summary      Sample table rows
// @Tags         admin
// @Produce      json
// @Param        table  query     string  true   "table name"
// @Param        limit  query     int     false  "rows, clamped to 1..100"  default(10)
// @Success      200    {object}  RowsResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  dbErrorResponse
// @Router       /admin-sample [get]
func (s *Server) AdminSampleHandler(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		writeError(w, http.StatusBadRequest, "Table parameter required")
		return
	}
	limit := intParam(r.URL.Query().Get("limit"), database.DefaultSample)

	result, err := s.browser.Sample(r.Context(), table, limit)
	if err != nil {
		if errors.Is(err, database.ErrInvalidTable) {
			writeError(w, http.StatusBadRequest, "Invalid table name")
			return
		}
		writeDBError(w, s.log(r), "SAMPLE_ERROR", err)
		return
	}
	writeJSON(w, http.StatusOK, RowsResponse{OK: true, RowsResult: result})
}

// intParam parses a query value, falling back to def when it is absent or
// not a number. Range clamping is left to the query builder.
func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func nonNil(tables []models.Table) []models.Table {
	if tables == nil {
		return []models.Table{}
	}
	return tables
}
