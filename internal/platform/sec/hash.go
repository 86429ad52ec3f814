// Copyright (c) 2026 TaskTrail. All rights reserved.

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the fixed bcrypt work factor for all stored hashes.
const PasswordHashCost = 10

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// The salt is random and embedded in the output, so hashing the same
// password twice produces two different strings that both verify.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
//
// A malformed hash degrades to false rather than surfacing an error, so the
// caller observes the same outcome for "wrong password" and "broken hash".
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
