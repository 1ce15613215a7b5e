package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"rutakm/internal/config"
	"rutakm/internal/http"
	"rutakm/internal/llm"
	"rutakm/internal/routelog"
	"rutakm/internal/service"
	"rutakm/internal/storage"
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

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx := context.Background()

	// Load the persisted route log into memory
	stateRepo := storage.NewStateRepo(db)
	store := routelog.NewStore(stateRepo)
	if err := store.Load(ctx); err != nil {
		log.Fatalf("Failed to load route log: %v", err)
	}
	slog.Info("Route log loaded", "routes", store.Len())

	// Create the Gemini distance estimator (external service layer)
	estimator, err := llm.NewGeminiEstimator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.CityContext)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	slog.Info("Gemini client initialized", "model", cfg.GeminiModel, "city", cfg.CityContext)

	// Create the route service
	routes := service.NewRouteService(store, estimator)

	// Create router with dependencies
	deps := &http.Deps{
		Routes: routes,
		DB:     db,
		Store:  store,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
