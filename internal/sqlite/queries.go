// File path: internal/sqlite/queries.go
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nicodishanthj/copybridge/internal/copybook"
)

// SaveLayout persists a parse result and its flattened fields in a single
// transaction. A fresh UUID is assigned when the layout has no ID yet; the
// stored layout (with ID) is returned.
func (s *Store) SaveLayout(ctx context.Context, layout Layout, fields []copybook.Field) (Layout, error) {
	if s == nil || s.db == nil {
		return Layout{}, fmt.Errorf("catalog store not initialised")
	}
	if strings.TrimSpace(layout.TableName) == "" {
		return Layout{}, fmt.Errorf("table name required")
	}
	if strings.TrimSpace(layout.ID) == "" {
		layout.ID = uuid.NewString()
	}
	layout.FieldCount = len(fields)
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO layouts(id, project_id, table_name, copybook, ddl, field_count)
                         VALUES (?, ?, ?, ?, ?, ?)`,
			layout.ID, layout.ProjectID, layout.TableName, layout.Copybook, layout.DDL, layout.FieldCount)
		if err != nil {
			return fmt.Errorf("insert layout: %w", err)
		}
		for i, f := range fields {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO layout_fields(layout_id, position, level, name, pic, sql_type, length, parent)
                                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				layout.ID, i, f.Level, f.Name, f.Pic, f.SQLType, f.Length, f.Parent)
			if err != nil {
				return fmt.Errorf("insert layout field %d: %w", i, err)
			}
		}
		return recordAudit(ctx, tx, layout.ProjectID, "layout_saved",
			fmt.Sprintf("layout %s (%s, %d fields)", layout.ID, layout.TableName, layout.FieldCount))
	})
	if err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// ListLayouts returns the persisted layouts for a project, newest first.
func (s *Store) ListLayouts(ctx context.Context, projectID string) ([]Layout, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("catalog store not initialised")
	}
	layouts := []Layout{}
	if err := s.db.SelectContext(ctx, &layouts,
		`SELECT * FROM layouts WHERE project_id = ? ORDER BY created_at DESC, id`, projectID); err != nil {
		return nil, fmt.Errorf("select layouts: %w", err)
	}
	return layouts, nil
}

// LayoutByID retrieves a single layout with its fields in declaration
// order.
func (s *Store) LayoutByID(ctx context.Context, id string) (*Layout, []LayoutField, error) {
	if s == nil || s.db == nil {
		return nil, nil, fmt.Errorf("catalog store not initialised")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil, fmt.Errorf("layout id required")
	}
	var layout Layout
	if err := s.db.GetContext(ctx, &layout, `SELECT * FROM layouts WHERE id = ?`, id); err != nil {
		return nil, nil, err
	}
	fields := []LayoutField{}
	if err := s.db.SelectContext(ctx, &fields,
		`SELECT * FROM layout_fields WHERE layout_id = ? ORDER BY position`, id); err != nil {
		return nil, nil, fmt.Errorf("select layout fields: %w", err)
	}
	return &layout, fields, nil
}

// DeleteLayout removes a layout; its fields cascade.
func (s *Store) DeleteLayout(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("catalog store not initialised")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("layout id required")
	}
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM layouts WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete layout: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("layout %s not found", id)
		}
		return recordAudit(ctx, tx, "", "layout_deleted", id)
	})
}
