package models

// RowsResult is one page of an arbitrary table. Columns follow the keys of
// the first returned row and are empty when no rows came back.
type RowsResult struct {
	Rows       []map[string]any `json:"rows"`
	TotalCount int64            `json:"totalCount"`
	Columns    []string         `json:"columns"`
}
