// Copyright (c) 2026 TaskTrail. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	// Create persists a brand-new user account and fills in the generated
	// ID and timestamps. A duplicate username or email surfaces as a
	// Conflict error.
	Create(ctx context.Context, user *User) error

	// FindByEmail returns the account with the given email, or a NotFound
	// error when no such account exists.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
