// File path: internal/sqlite/types.go
package sqlite

import "time"

// Layout is one persisted parse result: the raw copybook, the generated
// DDL, and summary metadata.
type Layout struct {
	ID         string    `db:"id" json:"id"`
	ProjectID  string    `db:"project_id" json:"project_id"`
	TableName  string    `db:"table_name" json:"table_name"`
	Copybook   string    `db:"copybook" json:"copybook"`
	DDL        string    `db:"ddl" json:"ddl"`
	FieldCount int       `db:"field_count" json:"field_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// LayoutField is one flattened field row belonging to a Layout, in
// declaration order.
type LayoutField struct {
	ID       int64  `db:"id" json:"-"`
	LayoutID string `db:"layout_id" json:"-"`
	Position int    `db:"position" json:"position"`
	Level    int    `db:"level" json:"level"`
	Name     string `db:"name" json:"name"`
	Pic      string `db:"pic" json:"pic,omitempty"`
	SQLType  string `db:"sql_type" json:"sql_type"`
	Length   int    `db:"length" json:"length,omitempty"`
	Parent   string `db:"parent" json:"parent,omitempty"`
}
