// File path: cmd/copybridge/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nicodishanthj/copybridge/internal/api"
	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/llm"
	"github.com/nicodishanthj/copybridge/internal/sqlite"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("copybridge: .env file not loaded", "error", err)
	} else {
		logger.Info("copybridge: environment loaded from .env")
	}

	addr := flag.String("addr", ":8082", "listen address")
	catalogPath := flag.String("catalog", defaultCatalogPath(), "path to the SQLite layout catalog (empty disables persistence)")
	project := flag.String("project", "", "default project id for persisted layouts")
	maxBody := flag.Int64("max-copybook-bytes", 0, "maximum parse request body size (0 uses defaults)")
	flag.Parse()

	logger.Info("copybridge: startup initiated", "addr", *addr, "catalog", *catalogPath)

	var catalog *sqlite.Store
	if trimmed := strings.TrimSpace(*catalogPath); trimmed != "" {
		if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
			logger.Error("copybridge: catalog directory creation failed", "error", err)
			fmt.Println("catalog error:", err)
			os.Exit(1)
		}
		store, err := sqlite.Open(trimmed)
		if err != nil {
			logger.Error("copybridge: catalog open failed", "error", err)
			fmt.Println("catalog error:", err)
			os.Exit(1)
		}
		defer store.Close()
		catalog = store
		logger.Info("copybridge: layout catalog ready", "path", trimmed)
	} else {
		logger.Warn("copybridge: running without layout catalog")
	}

	provider := llm.NewProvider()
	logger.Info("copybridge: llm provider ready", "provider", provider.Name())

	cfg := api.DefaultConfig()
	if trimmed := strings.TrimSpace(*project); trimmed != "" {
		cfg.DefaultProject = trimmed
	}
	if *maxBody > 0 {
		cfg.MaxCopybookBytes = *maxBody
	}

	server, err := api.NewServer(ctx, catalog, provider, &cfg)
	if err != nil {
		logger.Error("copybridge: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("copybridge: server listening", "addr", *addr, "ui", "/ui/", "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("copybridge: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultCatalogPath() string {
	return filepath.Join("data", "layouts.db")
}
