// Copyright (c) 2026 TaskTrail. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrail/api/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies that a hashed password verifies against
its own plaintext and rejects a different one.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("Secret12")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("Secret12", hash))
	assert.False(t, sec.CheckPasswordHash("Secret13", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_Salted verifies that two hashes of the same password differ
(random salt) while both still verifying.
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("Secret12")
	require.NoError(t, err)
	second, err := sec.HashPassword("Secret12")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("Secret12", first))
	assert.True(t, sec.CheckPasswordHash("Secret12", second))
}

/*
TestCheckPasswordHash_Malformed verifies that broken hash input degrades
to false instead of panicking or surfacing an error.
*/
func TestCheckPasswordHash_Malformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty_hash", ""},
		{"garbage_hash", "not-a-bcrypt-hash"},
		{"truncated_hash", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, sec.CheckPasswordHash("Secret12", tt.hash))
		})
	}
}
