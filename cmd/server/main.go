package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zombar/seoanalyzer/internal/api"
	"github.com/zombar/seoanalyzer/internal/config"
	"github.com/zombar/seoanalyzer/internal/database"
	"github.com/zombar/seoanalyzer/internal/gemini"
	"github.com/zombar/seoanalyzer/internal/memstore"
	"github.com/zombar/seoanalyzer/internal/metrics"
	"github.com/zombar/seoanalyzer/internal/ollama"
	"github.com/zombar/seoanalyzer/internal/seo"
	"github.com/zombar/seoanalyzer/pkg/logging"
	"github.com/zombar/seoanalyzer/pkg/tracing"
)

func main() {
	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("seoanalyzer service initializing", "version", "1.0.0")

	// Initialize tracing
	tp, err := tracing.InitTracer(context.Background(), "seoanalyzer")
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
	}

	cfg := config.Load()

	var (
		port   = flag.String("port", cfg.Server.Port, "Server port (env: PORT)")
		dbPath = flag.String("db", cfg.Database.Path, "Database file path, or \"memory\" (env: DB_PATH)")
	)
	flag.Parse()

	// Select the store: "memory" (or empty) keeps analyses in process
	// memory; anything else is a SQLite file path.
	var store seo.Store
	if *dbPath == "" || *dbPath == "memory" {
		store = memstore.New()
		logger.Info("using in-memory store")
	} else {
		db, err := database.New(*dbPath)
		if err != nil {
			logger.Error("failed to initialize database", "error", err, "database_path", *dbPath)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		store = db
		logger.Info("using sqlite store", "path", *dbPath)
	}

	// Select the provider: Gemini when an API key is configured, Ollama
	// when explicitly enabled, otherwise none (analyze requests will fail
	// with a configuration error).
	var provider seo.Provider
	switch {
	case cfg.Gemini.APIKey != "":
		client, err := gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
		if err != nil {
			logger.Error("failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		provider = client
		logger.Info("Gemini provider initialized", "model", cfg.Gemini.Model)
	case cfg.Ollama.Enabled:
		client, err := ollama.New(cfg.Ollama.URL, cfg.Ollama.Model)
		if err != nil {
			logger.Error("failed to initialize Ollama client", "error", err, "ollama_url", cfg.Ollama.URL)
			os.Exit(1)
		}
		provider = client
		logger.Info("Ollama provider initialized", "model", cfg.Ollama.Model, "url", cfg.Ollama.URL)
	default:
		logger.Warn("no analysis provider configured, analyze requests will be rejected")
	}

	svc := seo.New(store, provider, metrics.New("seoanalyzer"), logger)

	apiHandler := api.NewHandler(svc, logger)

	// Middleware chain: HTTP logging -> tracing -> handlers
	handler := logging.HTTPLoggingMiddleware(logger)(
		tracing.HTTPMiddleware("seoanalyzer")(apiHandler),
	)

	// Extended write timeout covers slow provider calls
	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 420 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("seoanalyzer service starting",
			"port", *port,
			"database", *dbPath,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
