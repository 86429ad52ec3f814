// Copyright (c) 2026 TaskTrail. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, token lifetimes, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: Token issuer and cookie configuration.
  - Persistence: Startup connection retry policy.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "tasktrail-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in identity tokens.
	AuthIssuer = "tasktrail.app"

	// TokenTTL is the fixed validity window of an identity token. After this
	// window the token is rejected regardless of signature validity.
	TokenTTL = 24 * time.Hour

	// TokenCookieName is the name of the HTTP-only cookie carrying the token.
	TokenCookieName = "token"

	// TokenCookiePath is the scoped path for the token cookie.
	TokenCookiePath = "/"
)

// # Persistence Startup

const (
	// DBConnectAttempts bounds the number of connection attempts at startup
	// before unavailability is treated as fatal.
	DBConnectAttempts = 5

	// DBConnectRetryDelay is the fixed backoff between connection attempts.
	DBConnectRetryDelay = 2 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)
