// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/copybridge/internal/agent"
	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/llm"
	"github.com/nicodishanthj/copybridge/internal/sqlite"
)

type Server struct {
	router    chi.Router
	catalog   *sqlite.Store
	provider  llm.Provider
	annotator *agent.Annotator
	cfg       Config
}

// Config controls request handling defaults.
type Config struct {
	// DefaultProject scopes persisted layouts when a request names none.
	DefaultProject string
	// MaxCopybookBytes bounds the parse request body. The parser itself
	// is linear and never fails, so the size limit is the only guard.
	MaxCopybookBytes int64
}

func DefaultConfig() Config {
	return Config{
		DefaultProject:   "default",
		MaxCopybookBytes: 1 << 20,
	}
}

// Merge overlays non-zero overrides onto the base configuration.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.DefaultProject) != "" {
		result.DefaultProject = strings.TrimSpace(override.DefaultProject)
	}
	if override.MaxCopybookBytes > 0 {
		result.MaxCopybookBytes = override.MaxCopybookBytes
	}
	return result
}

// NewServer wires the parse, catalog, and annotation surfaces. The catalog
// store may be nil; persistence endpoints then report unavailability while
// parsing keeps working.
func NewServer(ctx context.Context, catalog *sqlite.Store, provider llm.Provider, cfg *Config) (*Server, error) {
	logger := common.Logger()
	if provider == nil {
		return nil, fmt.Errorf("llm provider required")
	}
	configuration := DefaultConfig()
	if cfg != nil {
		configuration = configuration.Merge(*cfg)
	}
	logger.Info(
		"api: building server",
		"provider", provider.Name(),
		"catalog_available", catalog != nil,
		"default_project", configuration.DefaultProject,
	)
	srv := &Server{
		router:    chi.NewRouter(),
		catalog:   catalog,
		provider:  provider,
		annotator: agent.NewAnnotator(provider),
		cfg:       configuration,
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/parse", s.handleParse)
	s.router.Get("/v1/layouts", s.handleLayouts)
	s.router.Get("/v1/layouts/{id}", s.handleLayoutDetail)
	s.router.Delete("/v1/layouts/{id}", s.handleLayoutDelete)
	s.router.Post("/v1/annotate", s.handleAnnotate)
	s.router.Get("/v1/logs", s.handleLogs)

	uiPath := filepath.Join("web", "ui")
	if _, err := os.Stat(filepath.Join(uiPath, "index.html")); err != nil {
		logger.Warn("api: ui index missing", "path", filepath.Join(uiPath, "index.html"), "error", err)
	}
	fileServer := http.FileServer(http.Dir(uiPath))
	s.router.Get("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusMovedPermanently)
	})
	s.router.Get("/ui/*", func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/ui/")
		if trimmed == "" || trimmed == "/" {
			http.ServeFile(w, r, filepath.Join(uiPath, "index.html"))
			return
		}
		http.StripPrefix("/ui/", fileServer).ServeHTTP(w, r)
	})
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
