// Copyright (c) 2026 TaskTrail. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating identity tokens.
type TokenProvider interface {
	// Generate creates a signed token string carrying the user's identity.
	Generate(userID int64, username, email string) (string, error)
}

// dummyPasswordHash is a valid bcrypt hash (of an unrelated string) compared
// against the supplied password when the email is unknown, so the
// "no such user" and "wrong password" paths have comparable cost.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service implements user registration and authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register hashes the password and persists a brand new user account.
//
// A duplicate username or email surfaces as a Conflict error from the
// repository (unique constraint), never as a generic failure.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	// Prevent storing plain-text passwords. The work factor is fixed so all
	// stored hashes carry the same cost.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established identity.
type LoginSession struct {
	Token string
	User  *User
}

// Login validates credentials and issues an identity token.
//
// An unknown email and a wrong password are indistinguishable to the caller:
// both return the same Unauthorized error, and the unknown-email path burns
// a bcrypt comparison against a dummy hash so the two paths cost the same.
// Infrastructure failures (an unreachable database) are not credential
// failures and propagate as server errors.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		appError := apperr.As(err)
		if appError == nil || appError.HTTPStatus != http.StatusNotFound {
			return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
		}
		sec.CheckPasswordHash(input.Password, dummyPasswordHash)
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokenProvider.Generate(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{Token: token, User: user}, nil
}
