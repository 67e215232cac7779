// File path: internal/api/parse_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/copybook"
	"github.com/nicodishanthj/copybridge/internal/sqlite"
)

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxCopybookBytes)
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: parse decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tableName := strings.TrimSpace(req.TableName)
	if tableName == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("table_name required"))
		return
	}

	fields := copybook.NewParser().Parse(req.Copybook)
	ddl := copybook.GenerateDDL(fields, tableName)
	logger.Info("api: copybook parsed", "table", tableName, "fields", len(fields), "persist", req.Persist)

	resp := parseResponse{Fields: fields, DDL: ddl, FieldCount: len(fields)}
	if req.Persist {
		if s.catalog == nil {
			writeError(w, http.StatusServiceUnavailable, fmt.Errorf("layout catalog not configured"))
			return
		}
		project := strings.TrimSpace(req.ProjectID)
		if project == "" {
			project = s.cfg.DefaultProject
		}
		saved, err := s.catalog.SaveLayout(ctx, sqlite.Layout{
			ProjectID: project,
			TableName: tableName,
			Copybook:  req.Copybook,
			DDL:       ddl,
		}, fields)
		if err != nil {
			logger.Error("api: layout persist failed", "table", tableName, "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.LayoutID = saved.ID
	}
	writeJSON(w, http.StatusOK, resp)
}
