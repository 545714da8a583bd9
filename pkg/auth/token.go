package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for every failure mode: bad signature,
// malformed structure, or expiry. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the identity encoded in an issued token alongside the
// standard registered claims (iat, exp).
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
}

// TokenService issues and verifies signed, self-contained identity tokens.
// The signing key is process-wide configuration injected once at construction;
// rotating it invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing HS256 tokens with the given
// secret and lifetime.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token encoding identity plus issued-at and expiry.
func (s *TokenService) Issue(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Any failure yields ErrInvalidToken; Verify never panics on malformed input.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.UserID == uuid.Nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
