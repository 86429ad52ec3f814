// Copyright (c) 2026 TaskTrail. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrail/api/internal/platform/sec"
)

func newTestTokenService(ttl time.Duration) *sec.TokenService {
	return sec.NewTokenService("test-secret", "tasktrail.test", ttl)
}

/*
TestTokenService_RoundTrip verifies that a generated token decodes back to
the same identity before expiry.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(24 * time.Hour)

	token, err := service.Generate(7, "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "tasktrail.test", claims.Issuer)
}

/*
TestTokenService_Tampered verifies that altering any character of the token
invalidates the signature.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newTestTokenService(24 * time.Hour)

	token, err := service.Generate(7, "alice", "alice@example.com")
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = service.Verify(tampered)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Expired verifies that a token past its validity window is
rejected regardless of signature validity.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestTokenService(-1 * time.Minute)

	token, err := service.Generate(7, "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_WrongSecret verifies that tokens signed with a different
secret are rejected (rotation invalidates all issued tokens).
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing := sec.NewTokenService("old-secret", "tasktrail.test", 24*time.Hour)
	verifying := sec.NewTokenService("new-secret", "tasktrail.test", 24*time.Hour)

	token, err := issuing.Generate(7, "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Malformed verifies that malformed input returns the unified
invalid result instead of panicking.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTestTokenService(24 * time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "invalid.token.here"},
		{"not_jwt", "aGVsbG8gd29ybGQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}
