// File path: internal/api/types.go
package api

import (
	"github.com/nicodishanthj/copybridge/internal/copybook"
	"github.com/nicodishanthj/copybridge/internal/sqlite"
)

type parseRequest struct {
	Copybook  string `json:"copybook"`
	TableName string `json:"table_name"`
	ProjectID string `json:"project_id,omitempty"`
	Persist   bool   `json:"persist,omitempty"`
}

type parseResponse struct {
	Fields     []copybook.Field `json:"fields"`
	DDL        string           `json:"ddl"`
	FieldCount int              `json:"field_count"`
	LayoutID   string           `json:"layout_id,omitempty"`
}

type annotateRequest struct {
	Copybook  string `json:"copybook"`
	TableName string `json:"table_name"`
}

type annotateResponse struct {
	Table         string `json:"table"`
	Documentation string `json:"documentation"`
	Provider      string `json:"provider"`
}

type layoutListResponse struct {
	Project string          `json:"project"`
	Layouts []sqlite.Layout `json:"layouts"`
}

type layoutDetailResponse struct {
	Layout sqlite.Layout        `json:"layout"`
	Fields []sqlite.LayoutField `json:"fields"`
}
