// Package auth provides credential hashing, token issuance/verification, and
// the bearer-token middleware guarding mutating routes.
//
// The token signing key must be at least 32 bytes in production. Generate with:
//
//	openssl rand -base64 32
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances brute-force resistance against login latency.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of plaintext. A fresh salt is
// generated per call, so hashing the same input twice yields different output.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt digest.
// A malformed digest is treated as a non-match, never an error.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
