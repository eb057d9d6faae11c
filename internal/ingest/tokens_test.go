package ingest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
)

func TestTokenService(t *testing.T) {
	t.Run("round-trips a store filename", func(t *testing.T) {
		tokens, err := ingest.NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService() returned unexpected error: %v", err)
		}

		token, err := tokens.Issue("abc123.db")
		if err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}

		name, err := tokens.Redeem(token)
		if err != nil {
			t.Fatalf("Redeem() returned unexpected error: %v", err)
		}
		if name != "abc123.db" {
			t.Errorf("Redeem() = %q, want abc123.db", name)
		}
	})

	t.Run("rejects tampered tokens", func(t *testing.T) {
		tokens, err := ingest.NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService() returned unexpected error: %v", err)
		}

		token, err := tokens.Issue("abc123.db")
		if err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}

		tampered := "X" + token[1:]
		if _, err := tokens.Redeem(tampered); !errors.Is(err, apperrors.ErrInvalidStoreToken) {
			t.Errorf("Expected ErrInvalidStoreToken for tampered token, got %v", err)
		}

		if _, err := tokens.Redeem("/etc/passwd"); !errors.Is(err, apperrors.ErrInvalidStoreToken) {
			t.Errorf("Expected ErrInvalidStoreToken for arbitrary text, got %v", err)
		}
	})

	t.Run("rejects tokens from another key", func(t *testing.T) {
		first, err := ingest.NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService() returned unexpected error: %v", err)
		}
		second, err := ingest.NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService() returned unexpected error: %v", err)
		}

		token, err := first.Issue("abc123.db")
		if err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}
		if _, err := second.Redeem(token); !errors.Is(err, apperrors.ErrInvalidStoreToken) {
			t.Errorf("Expected ErrInvalidStoreToken across keys, got %v", err)
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		tokens, err := ingest.NewTokenService("", time.Millisecond)
		if err != nil {
			t.Fatalf("NewTokenService() returned unexpected error: %v", err)
		}

		token, err := tokens.Issue("abc123.db")
		if err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}

		time.Sleep(5 * time.Millisecond)
		if _, err := tokens.Redeem(token); !errors.Is(err, apperrors.ErrInvalidStoreToken) {
			t.Errorf("Expected ErrInvalidStoreToken after TTL, got %v", err)
		}
	})
}
