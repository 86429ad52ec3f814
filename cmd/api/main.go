// Copyright (c) 2026 TaskTrail. All rights reserved.

// Command api is the entry point for the TaskTrail HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool), if configured.
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// When DATABASE_URL is absent the server still starts: the health endpoint
// reports "not_configured" and the API routes answer 503. No business logic
// lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasktrail/api/internal/api"
	"github.com/tasktrail/api/internal/platform/config"
	"github.com/tasktrail/api/internal/platform/constants"
	"github.com/tasktrail/api/internal/platform/migration"
	pgstore "github.com/tasktrail/api/internal/platform/postgres"
	"github.com/tasktrail/api/internal/platform/sec"
	"github.com/tasktrail/api/internal/tasks"
	"github.com/tasktrail/api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[TaskTrail] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database_configured", cfg.HasDatabase()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Token Service ──────────────────────────────────────────────────
	tokenService := sec.NewTokenService(cfg.TokenSecret, constants.AuthIssuer, constants.TokenTTL)

	handlers := api.Handlers{
		Health: api.NewHealthHandler(nil),
	}

	// ── 4. PostgreSQL + Domain Wiring ─────────────────────────────────────
	if cfg.HasDatabase() {
		pool, err := pgstore.Connect(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		handlers.Health = api.NewHealthHandler(func(request *http.Request) error {
			return pgstore.Ping(request.Context(), pool)
		})

		userRepository := auth.NewUserRepository(pool)
		authService := auth.NewService(userRepository, tokenService)
		handlers.Auth = auth.NewHandler(authService, cfg.IsProduction())

		taskRepository := tasks.NewPostgresRepository(pool)
		taskService := tasks.NewService(taskRepository, log)
		handlers.Tasks = tasks.NewHandler(taskService)
	} else {
		log.Warn("no DATABASE_URL configured, starting in degraded mode")
	}

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, tokenService, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
