package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates no user record matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login. The message is deliberately
	// generic — it must never reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidEmail indicates the email violates the address format rules.
	ErrInvalidEmail = errors.New("invalid email address")
)
