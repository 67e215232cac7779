// File path: internal/api/layouts_handler.go
package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/copybridge/internal/common"
)

func (s *Server) handleLayouts(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("layout catalog not configured"))
		return
	}
	project := strings.TrimSpace(r.URL.Query().Get("project"))
	if project == "" {
		project = s.cfg.DefaultProject
	}
	layouts, err := s.catalog.ListLayouts(r.Context(), project)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutListResponse{Project: project, Layouts: layouts})
}

func (s *Server) handleLayoutDetail(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("layout catalog not configured"))
		return
	}
	id := chi.URLParam(r, "id")
	layout, fields, err := s.catalog.LayoutByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, fmt.Errorf("layout %s not found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutDetailResponse{Layout: *layout, Fields: fields})
}

func (s *Server) handleLayoutDelete(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("layout catalog not configured"))
		return
	}
	id := chi.URLParam(r, "id")
	if err := s.catalog.DeleteLayout(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	logger.Info("api: layout deleted", "layout", id)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
