// Copyright (c) 2026 TaskTrail. All rights reserved.

/*
Package api assembles the HTTP transport for the TaskTrail service.

It wires the middleware chain, the health endpoint, and the domain routers
(auth, tasks) into a single [chi.Router] and manages the server lifecycle
(listen, graceful shutdown).
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/config"
	"github.com/tasktrail/api/internal/platform/constants"
	"github.com/tasktrail/api/internal/platform/middleware"
	"github.com/tasktrail/api/internal/platform/respond"
	"github.com/tasktrail/api/internal/tasks"
	"github.com/tasktrail/api/internal/users/auth"
)

// Handlers bundles the routable components of the application.
//
// Auth and Tasks are nil when no database is configured; their routes then
// answer 503 instead of being absent, so clients see a consistent surface.
type Handlers struct {
	Health http.Handler
	Auth   *auth.Handler
	Tasks  *tasks.Handler
}

// Server wraps the HTTP server with lifecycle management.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// NewServer builds the full router and returns a ready-to-run [Server].
func NewServer(cfg *config.Config, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	router := chi.NewRouter()

	// Middleware order matters: tracing and logging wrap everything,
	// authentication runs before any domain router sees the request.
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimw.CleanPath)
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Authenticate(verifier))

	router.Get("/health", handlers.Health.ServeHTTP)

	if handlers.Auth != nil {
		router.Mount("/auth", handlers.Auth.Routes())
	} else {
		router.Mount("/auth", databaseUnavailableRouter())
	}

	if handlers.Tasks != nil {
		router.Mount("/tasks", handlers.Tasks.Routes())
	} else {
		router.Mount("/tasks", databaseUnavailableRouter())
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
		log: logger,
	}
}

// databaseUnavailableRouter answers every request with 503.
func databaseUnavailableRouter() chi.Router {
	router := chi.NewRouter()
	router.HandleFunc("/*", func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.ServiceUnavailable("Database not configured"))
	})
	return router
}

// ListenAndServe starts accepting connections. It blocks until the server
// stops and returns nil on a clean shutdown.
func (server *Server) ListenAndServe() error {
	server.log.Info("http_server_starting", slog.String("addr", server.httpServer.Addr))

	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the given timeout.
func (server *Server) Shutdown(timeout time.Duration) error {
	server.log.Info("http_server_stopping")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return server.httpServer.Shutdown(ctx)
}
