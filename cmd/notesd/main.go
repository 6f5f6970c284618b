package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/SK-Digital/Note-App/internal/config"
	"github.com/SK-Digital/Note-App/internal/export"
	"github.com/SK-Digital/Note-App/internal/http"
	"github.com/SK-Digital/Note-App/internal/repository"
	"github.com/SK-Digital/Note-App/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize the storage backend
	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := storage.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			_ = db.Close()
		}()
		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = storage.NewSQLiteStore(db)
		slog.Info("SQLite storage initialized", "path", cfg.DBPath)
	default:
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		store = fileStore
		slog.Info("File storage initialized", "root", cfg.DataDir)
	}

	// Build the repository and populate the working set. A degraded storage
	// medium surfaces as empty lists, not a startup failure.
	repo := repository.New(store)
	if err := repo.LoadAll(context.Background()); err != nil {
		slog.Error("Initial load failed, starting with an empty working set", "error", err)
	}

	deps := &http.Deps{
		Repo:     repo,
		Store:    store,
		Importer: export.NewMarkdownImporter(),
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
