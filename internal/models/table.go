package models

// Table describes a base table discovered through catalog introspection.
type Table struct {
	Name   string `json:"name" example:"inspections"`
	Schema string `json:"schema" example:"public"`
}
