package models

import (
	"strings"
	"testing"
)

func TestNewEmailAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "a@b.com", false},
		{"valid with subdomain", "user@mail.example.com", false},
		{"valid with plus tag", "user+tag@example.com", false},
		{"empty string", "", true},
		{"missing at sign", "userexample.com", true},
		{"missing domain dot", "user@example", true},
		{"two at signs", "user@@example.com", true},
		{"whitespace in local part", "us er@example.com", true},
		{"whitespace in domain", "user@exa mple.com", true},
		{"missing local part", "@example.com", true},
		{"missing tld", "user@example.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmailAddress(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEmailAddress(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNewEmailAddress_MaxLength(t *testing.T) {
	// local@domain.tld totaling exactly 254 chars is accepted.
	local := strings.Repeat("a", 254-len("@example.com"))
	ok := local + "@example.com"
	if _, err := NewEmailAddress(ok); err != nil {
		t.Fatalf("expected 254-char email to be valid: %v", err)
	}

	tooLong := local + "a@example.com"
	if _, err := NewEmailAddress(tooLong); err == nil {
		t.Fatal("expected error for 255-char email")
	}
}

func TestEmailAddress_CaseSensitive(t *testing.T) {
	a, err := NewEmailAddress("A@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewEmailAddress("a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No normalization: distinct spellings stay distinct.
	if a == b {
		t.Fatal("expected case-sensitive comparison to differ")
	}
}

func TestEmailAddress_String(t *testing.T) {
	e := EmailAddress("a@b.com")
	if e.String() != "a@b.com" {
		t.Fatalf("expected %q, got %q", "a@b.com", e.String())
	}
}
