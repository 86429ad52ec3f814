// Copyright (c) 2026 TaskTrail. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the core domain entity (User) and the logic for registration,
credential verification, and identity token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the TaskTrail application.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the caller-facing projection of a [User].
//
// Every response that describes an account goes through this type so the
// password hash can never leak by accident.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile returns the client-safe projection of the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// # Identity Constraints

const (
	// UsernameMinLen and UsernameMaxLen bound the username length.
	UsernameMinLen = 3
	UsernameMaxLen = 50

	// PasswordMinLen is the minimum accepted password length.
	PasswordMinLen = 8
)
