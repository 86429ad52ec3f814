// Copyright (c) 2026 TaskTrail. All rights reserved.

package api

import (
	"net/http"
	"time"

	"github.com/tasktrail/api/internal/platform/respond"
)

// Database health states reported by the health endpoint.
const (
	databaseConnected     = "connected"
	databaseDisconnected  = "disconnected"
	databaseNotConfigured = "not_configured"
)

// healthResponse is the JSON body of the health endpoint.
type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler reports process liveness and database reachability.
//
// # States
//   - No database configured : 200, database "not_configured". The process is
//     alive and intentionally degraded, not broken.
//   - Ping succeeds          : 200, database "connected".
//   - Ping fails             : 503, database "disconnected".
type HealthHandler struct {
	// checkDatabase pings the database. Nil when no database is configured.
	checkDatabase func(*http.Request) error
}

// NewHealthHandler constructs a health handler. Pass a nil check when no
// database is configured.
func NewHealthHandler(checkDatabase func(*http.Request) error) *HealthHandler {
	return &HealthHandler{checkDatabase: checkDatabase}
}

// ServeHTTP implements [http.Handler].
func (handler *HealthHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if handler.checkDatabase == nil {
		respond.OK(writer, healthResponse{
			Status:    "healthy",
			Database:  databaseNotConfigured,
			Message:   "Server is running without a database connection",
			Timestamp: timestamp,
		})
		return
	}

	if err := handler.checkDatabase(request); err != nil {
		respond.JSON(writer, http.StatusServiceUnavailable, healthResponse{
			Status:    "unhealthy",
			Database:  databaseDisconnected,
			Message:   "Database ping failed",
			Timestamp: timestamp,
		})
		return
	}

	respond.OK(writer, healthResponse{
		Status:    "healthy",
		Database:  databaseConnected,
		Timestamp: timestamp,
	})
}
