package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Identity is the authenticated principal attached to a request context
// after the bearer token has been verified.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrIdentityNotFound is returned when no Identity exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrIdentityNotFound = errors.New("identity not found in context")

// IdentityFromCtx extracts the authenticated identity from the request context.
// Returns ErrIdentityNotFound if no identity is set (unauthenticated request).
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok || identity.UserID == uuid.Nil {
		return Identity{}, ErrIdentityNotFound
	}
	return identity, nil
}

// WithIdentity returns a new context with the given Identity attached.
// Used by the auth middleware after verifying the bearer token.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
