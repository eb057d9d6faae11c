package ingest

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
)

// TokenService seals store filenames into fernet tokens. Clients hold the
// token between requests instead of a raw filesystem path, so a tampered or
// hand-crafted value fails verification rather than pointing the server at
// an arbitrary file.
type TokenService struct {
	key *fernet.Key
	ttl time.Duration
}

// NewTokenService creates a TokenService from an encoded fernet key. An
// empty key generates a fresh random one, invalidating tokens on restart.
func NewTokenService(encodedKey string, ttl time.Duration) (*TokenService, error) {
	if encodedKey == "" {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate token key: %w", err)
		}
		return &TokenService{key: &key, ttl: ttl}, nil
	}

	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token key: %w", err)
	}
	return &TokenService{key: keys[0], ttl: ttl}, nil
}

// Issue seals a store filename into a token.
func (t *TokenService) Issue(filename string) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(filename), t.key)
	if err != nil {
		return "", fmt.Errorf("failed to issue store token: %w", err)
	}
	return string(tok), nil
}

// Redeem verifies a token and returns the sealed filename. Tokens older than
// the configured TTL, or not produced by Issue, fail with
// ErrInvalidStoreToken.
func (t *TokenService) Redeem(token string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(token), t.ttl, []*fernet.Key{t.key})
	if msg == nil {
		return "", apperrors.ErrInvalidStoreToken
	}
	return string(msg), nil
}
