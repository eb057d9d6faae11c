package validation

import (
	"fmt"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
)

// ValidateFundCode checks that a fund code is usable as a ledger table name:
// non-empty, starting with a letter, containing only letters, digits and
// underscores. Fund codes are interpolated into table-name positions, so
// anything outside this set is rejected outright.
func ValidateFundCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty code", apperrors.ErrInvalidFundCode)
	}
	for i, c := range code {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return fmt.Errorf("%w: %q must start with a letter", apperrors.ErrInvalidFundCode, code)
			}
		default:
			return fmt.Errorf("%w: %q contains invalid character %q", apperrors.ErrInvalidFundCode, code, c)
		}
	}
	return nil
}

// ValidateDurationToken checks a raw duration token against the closed set.
func ValidateDurationToken(token string) (model.Duration, error) {
	return model.ParseDuration(token)
}
