package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
)

// NewTestUploads wraps an existing on-disk store in an UploadService so that
// handlers can resolve it. The service's data directory is the store's
// directory, and the returned token names the store file.
func NewTestUploads(t *testing.T, storePath string) (*ingest.UploadService, string) {
	t.Helper()

	tokens, err := ingest.NewTokenService("", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create token service: %v", err)
	}

	uploads := ingest.NewUploadService(filepath.Dir(storePath), tokens)
	token, err := tokens.Issue(filepath.Base(storePath))
	if err != nil {
		t.Fatalf("Failed to issue store token: %v", err)
	}
	return uploads, token
}
