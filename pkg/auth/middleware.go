package auth

import (
	"net/http"
	"strings"

	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
)

const bearerPrefix = "Bearer "

// RequireAuth is a chi middleware that enforces authentication via bearer tokens.
// It extracts the token from the Authorization header, verifies it, and injects
// the decoded identity into the request context.
//
// A missing header or empty token segment means no credential was supplied and
// yields 401. A token that is present but fails verification (bad signature,
// malformed, expired) yields 403 — the two cases are deliberately distinct so
// clients can tell "log in" apart from "your token was rejected".
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func RequireAuth(tokens *TokenService, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				log.WarnContext(r.Context(), "bearer token rejected", "error", err)
				httpx.JSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// Returns "" when the header is absent, uses another scheme, or carries no
// token segment — all treated identically as "no credential supplied".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
