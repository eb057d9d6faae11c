package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
)

// UploadService receives uploaded ledger stores, parks them under the data
// directory with generated names, and maps store tokens back to paths.
type UploadService struct {
	dataDir string
	tokens  *TokenService
}

// NewUploadService creates an UploadService writing into dataDir.
func NewUploadService(dataDir string, tokens *TokenService) *UploadService {
	return &UploadService{dataDir: dataDir, tokens: tokens}
}

// Save writes an uploaded ledger store to disk and returns a token naming
// it. The original filename is only inspected for its extension
// (ErrInvalidStoreFile unless .db); the stored name is a generated UUID.
// The saved file must open as a SQLite store or the upload is rejected and
// removed.
func (u *UploadService) Save(filename string, r io.Reader) (string, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".db") {
		return "", fmt.Errorf("%w: got %q", apperrors.ErrInvalidStoreFile, filename)
	}

	stored := uuid.New().String() + ".db"
	path := filepath.Join(u.dataDir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to save uploaded store: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save uploaded store: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save uploaded store: %w", err)
	}

	// Reject files that are not actually SQLite stores before handing out a
	// token for them.
	st, err := store.Open(path)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	st.Close()

	return u.tokens.Issue(stored)
}

// CreateEmpty allocates a path for a brand-new store under the data
// directory and returns it with its token. The caller initializes the store.
func (u *UploadService) CreateEmpty() (path, token string, err error) {
	stored := uuid.New().String() + ".db"
	token, err = u.tokens.Issue(stored)
	if err != nil {
		return "", "", err
	}
	return filepath.Join(u.dataDir, stored), token, nil
}

// Resolve redeems a store token into the path of the uploaded store.
// The sealed name is reduced to its base name before joining, so a token can
// only ever name a file directly inside the data directory. Tokens naming a
// store that no longer exists (e.g. swept) fail with ErrInvalidStoreToken.
func (u *UploadService) Resolve(token string) (string, error) {
	stored, err := u.tokens.Redeem(token)
	if err != nil {
		return "", err
	}

	path := filepath.Join(u.dataDir, filepath.Base(stored))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: store no longer available", apperrors.ErrInvalidStoreToken)
	}
	return path, nil
}
