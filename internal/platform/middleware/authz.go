// Copyright (c) 2026 TaskTrail. All rights reserved.

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/constants"
	"github.com/tasktrail/api/internal/platform/ctxutil"
	"github.com/tasktrail/api/internal/platform/respond"
	"github.com/tasktrail/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token service
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.Claims, error)
}

// Authenticate extracts and verifies the identity token from the request's
// token cookie.
//
// # Flow
//  1. Check for the 'token' cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify the token via [TokenVerifier].
//  4. Inject [*sec.Claims] into the request context for downstream use.
//
// Each request is verified independently; no verification result is cached
// across requests. The distinct causes (missing vs. invalid vs. expired) are
// logged server-side but never reflected in the response beyond a generic 401.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.TokenCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
					"token_rejected", slog.Any("error", err))
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Claims] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetPrincipal(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
