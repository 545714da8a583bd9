package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the core aggregate for the user directory. PasswordHash is opaque —
// only pkg/auth knows how to produce or verify it. Users are created on
// registration and never updated or deleted afterwards.
type User struct {
	ID           uuid.UUID
	Email        EmailAddress
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a User aggregate with generated ID and current timestamp.
func NewUser(email EmailAddress, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
