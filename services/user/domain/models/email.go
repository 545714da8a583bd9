package models

import (
	"fmt"
	"regexp"
)

// EmailAddress is a value object representing a syntactically valid email.
// Matching is case-sensitive and exact — no normalization is applied, so
// "A@b.com" and "a@b.com" are distinct directory entries.
type EmailAddress string

const maxEmailLength = 254

// emailPattern requires one local part, one @, and a domain segment with a dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewEmailAddress constructs a valid EmailAddress or returns an error.
func NewEmailAddress(s string) (EmailAddress, error) {
	if s == "" {
		return "", fmt.Errorf("email must not be empty")
	}
	if len(s) > maxEmailLength {
		return "", fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	if !emailPattern.MatchString(s) {
		return "", fmt.Errorf("email must have the form local@domain.tld")
	}
	return EmailAddress(s), nil
}

// String returns the underlying string value.
func (e EmailAddress) String() string {
	return string(e)
}
