// Copyright (c) 2026 TaskTrail. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/ctxutil"
	"github.com/tasktrail/api/internal/platform/sec"
	"github.com/tasktrail/api/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// IntParam retrieves a named URL parameter and parses it as an int64.
//
// A non-numeric value yields a 400 validation error naming the parameter.
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid " + name)
	}
	return value, nil
}

// RequiredPrincipal ensures the request is authenticated and returns the
// principal's claims, or an Unauthorized error.
func RequiredPrincipal(request *http.Request) (*sec.Claims, error) {
	claims := ctxutil.GetPrincipal(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
