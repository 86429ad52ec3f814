// Copyright (c) 2026 TaskTrail. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single rejection outcome for token verification.
//
// Malformed input, a bad signature, and an elapsed expiry all collapse into
// this error so that callers cannot distinguish a forged token from an
// expired one.
var ErrInvalidToken = errors.New("sec: invalid token")

// Claims represents the payload embedded inside an identity token.
//
// # Why custom claims?
//
// By embedding the user's ID, username, and email directly inside the JWT,
// the request gate can reconstruct the active principal WITHOUT querying the
// database on every single API request. The token is fully self-contained;
// there is no server-side session store.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is process-wide configuration injected once at startup.
// Rotating it invalidates every previously issued token.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret, issuer string, timeToLive time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}
}

// Generate creates a signed identity token for a user.
//
// The signature covers the entire payload, so any mutation of the claims
// invalidates the token.
func (service *TokenService) Generate(userID int64, username, email string) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		UserID:   userID,
		Username: username,
		Email:    email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a token string.
//
// It is a pure function of the token, the secret, and the current time. Every
// failure mode (empty string, malformed input, bad signature, expiry) returns
// [ErrInvalidToken]; it never panics.
func (service *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
