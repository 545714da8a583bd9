package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/storefront/pkg/config"
	"github.com/ghuser/storefront/pkg/logger"
)

// newTestLogger creates a logger that discards all but error output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	log := newTestLogger()
	identity := Identity{UserID: uuid.New(), Email: "a@b.com"}

	token, err := tokens.Issue(identity)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = IdentityFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != identity {
		t.Fatalf("expected identity %v in context, got %v", identity, captured)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_EmptyBearerToken(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	// Non-bearer schemes are treated as no credential supplied.
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Bearer not-a-valid-token")
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(-time.Minute)
	log := newTestLogger()

	token, err := tokens.Issue(Identity{UserID: uuid.New(), Email: "a@b.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAuth_TokenSignedWithOtherKey(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	other := NewTokenService([]byte("another-signing-key-of-32-bytes!"), time.Hour)
	log := newTestLogger()

	token, err := other.Issue(Identity{UserID: uuid.New(), Email: "a@b.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(tokens, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
