package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a bcrypt digest", func(t *testing.T) {
		hashed, err := HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(hashed, "$2a$") {
			t.Fatalf("expected bcrypt prefix, got %q", hashed)
		}
	})

	t.Run("same input hashes differently each call", func(t *testing.T) {
		a, err := HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := HashPassword("secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a == b {
			t.Fatal("expected per-call salts to produce distinct digests")
		}
	})

	t.Run("over 72 bytes returns error", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("x", 73))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correct password matches", func(t *testing.T) {
		if !VerifyPassword("secret1", hashed) {
			t.Fatal("expected match for correct password")
		}
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		if VerifyPassword("secret2", hashed) {
			t.Fatal("expected mismatch for wrong password")
		}
	})

	t.Run("malformed digest is a non-match", func(t *testing.T) {
		if VerifyPassword("secret1", "not-a-bcrypt-digest") {
			t.Fatal("expected mismatch for malformed digest")
		}
	})

	t.Run("empty digest is a non-match", func(t *testing.T) {
		if VerifyPassword("secret1", "") {
			t.Fatal("expected mismatch for empty digest")
		}
	})
}
