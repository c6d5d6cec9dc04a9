package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opensea-tracker/internal/api"
	"opensea-tracker/internal/config"
	"opensea-tracker/internal/database"
	"opensea-tracker/internal/store"
	"opensea-tracker/internal/tracker"
	"opensea-tracker/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/tracker.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	once := flag.Bool("once", false, "run a single cycle and exit")
	flag.Parse()

	// Set up structured logging
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting tracker",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration; a missing API key or unusable database config is
	// fatal here, before anything touches the network.
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"collections", len(cfg.Tracker.Collections),
		"interval", cfg.Tracker.Interval.Std(),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	logger.Info("database connected")

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout.Std()),
	)

	detector := store.NewDetector(store.New(pool), logger)
	tr := tracker.New(cfg.Tracker.Collections, apiClient, detector, logger)

	if *once {
		report := tr.Run(ctx)
		tr.LogReport(report)
		return
	}

	// Health server
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
		Handler: createHealthHandler(pool, tr),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Health.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	logger.Info("tracker running",
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Health.Port),
	)

	// Runs until the shutdown signal cancels ctx; a run in progress
	// completes before the loop exits.
	tr.Loop(ctx, cfg.Tracker.Interval.Std())

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	healthServer.Shutdown(shutdownCtx)

	logger.Info("tracker stopped")
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(pinger interface {
	Ping(context.Context) error
}, tr *tracker.Tracker) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status       string `json:"status"`
			Database     string `json:"database"`
			Runs         int64  `json:"runs"`
			TotalChanges int64  `json:"total_changes"`
		}{
			Status:       "healthy",
			Database:     "connected",
			Runs:         tr.Runs(),
			TotalChanges: tr.ChangedTotal(),
		}

		if err := pinger.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Database = "disconnected"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
