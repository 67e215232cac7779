// File path: internal/api/annotate_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/copybook"
)

func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxCopybookBytes)
	var req annotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: annotate decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tableName := strings.TrimSpace(req.TableName)
	if tableName == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("table_name required"))
		return
	}
	fields := copybook.NewParser().Parse(req.Copybook)
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("copybook yielded no fields"))
		return
	}
	documentation, err := s.annotator.Annotate(r.Context(), tableName, fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, annotateResponse{
		Table:         copybook.Namespace + "." + tableName,
		Documentation: documentation,
		Provider:      s.provider.Name(),
	})
}
