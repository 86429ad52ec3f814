// Copyright (c) 2026 TaskTrail. All rights reserved.

// Package dberr classifies low-level database errors for the repository
// layer. The repositories map classified errors onto [apperr] values so no
// storage detail leaks to callers.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
