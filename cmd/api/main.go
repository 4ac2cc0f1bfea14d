// Package main is the entry point for the plan-it-ahead API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/config"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/handler/gen"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/middleware"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/provider"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/repo"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/service"
	"github.com/Jinash-Rouniyar/plan-it-ahead/migrations"
	"github.com/Jinash-Rouniyar/plan-it-ahead/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(context.Background(), pool, logger); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// --- Providers and services -------------------------------------------
	opts := provider.Options{
		RequestsPerSecond: cfg.Providers.RequestsPerSecond,
		Logger:            logger,
	}
	xoteloOpts := opts
	xoteloOpts.BaseURL = cfg.Providers.XoteloBaseURL

	searchSvc := service.NewSearchService(
		provider.NewOpenTripMap(cfg.Providers.OpenTripMapKey, opts),
		provider.NewXotelo("", xoteloOpts),
		provider.NewAmadeus(cfg.Providers.AmadeusClientID, cfg.Providers.AmadeusClientSecret, cfg.Providers.AmadeusEnv, opts),
		provider.NewSerpAPI(cfg.Providers.SerpAPIKey, opts),
		logger,
	)
	itinerarySvc := service.NewItineraryService(repo.NewItineraryRepo(pool), repo.NewItemRepo(pool))

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → MaxBody.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	srvImpl := handler.NewServer(itinerarySvc, searchSvc)
	gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srvImpl, nil, handler.StrictOptions(logger)),
		gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: handler.RequestErrorHandler},
	)

	// --- HTTP Server ------------------------------------------------------
	// Provider calls are bounded by provider.DefaultTimeout; the write
	// timeout leaves room for a search that fans out image lookups.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies the embedded goose migrations through a database/sql view
// of the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		logger.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
