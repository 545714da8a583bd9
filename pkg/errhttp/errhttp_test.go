package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/storefront/pkg/auth"
	itemdomain "github.com/ghuser/storefront/services/item/domain"
	userdomain "github.com/ghuser/storefront/services/user/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrEmailTaken", userdomain.ErrEmailTaken, http.StatusConflict},
		{"ErrInvalidCredentials", userdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ErrIdentityNotFound", auth.ErrIdentityNotFound, http.StatusUnauthorized},
		{"ErrInvalidItemName", itemdomain.ErrInvalidItemName, http.StatusBadRequest},
		{"ErrInvalidPrice", itemdomain.ErrInvalidPrice, http.StatusBadRequest},
		{"ErrInvalidEmail", userdomain.ErrInvalidEmail, http.StatusBadRequest},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrEmailTaken", fmt.Errorf("register: %w", userdomain.ErrEmailTaken), http.StatusConflict},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_InternalDetailNotLeaked(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused on 10.0.0.3"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("expected generic 500 body, got %q", body["error"])
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
