package validation_test

import (
	"errors"
	"testing"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/validation"
)

func TestValidateFundCode(t *testing.T) {
	t.Run("accepts plain fund codes", func(t *testing.T) {
		for _, code := range []string{"VOO", "SPY", "brk_b", "Fund2"} {
			if err := validation.ValidateFundCode(code); err != nil {
				t.Errorf("ValidateFundCode(%q) = %v, want nil", code, err)
			}
		}
	})

	t.Run("rejects codes that cannot safely name a table", func(t *testing.T) {
		cases := []string{
			"",
			"1VOO",
			"VOO; DROP TABLE Funds",
			`V"OO`,
			"VOO SPY",
			"VOO-SPY",
		}
		for _, code := range cases {
			if err := validation.ValidateFundCode(code); !errors.Is(err, apperrors.ErrInvalidFundCode) {
				t.Errorf("ValidateFundCode(%q) = %v, want ErrInvalidFundCode", code, err)
			}
		}
	})
}

func TestValidateDurationToken(t *testing.T) {
	t.Run("accepts known tokens and defaults the empty string", func(t *testing.T) {
		d, err := validation.ValidateDurationToken("")
		if err != nil || d != model.DurationTotal {
			t.Errorf("ValidateDurationToken(\"\") = (%v, %v), want (Total, nil)", d, err)
		}

		d, err = validation.ValidateDurationToken("1WK")
		if err != nil || d != model.Duration1WK {
			t.Errorf("ValidateDurationToken(1WK) = (%v, %v)", d, err)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, raw := range []string{"6MO", "total", "ALL", "1W"} {
			if _, err := validation.ValidateDurationToken(raw); !errors.Is(err, apperrors.ErrUnknownDurationToken) {
				t.Errorf("ValidateDurationToken(%q) = %v, want ErrUnknownDurationToken", raw, err)
			}
		}
	})
}
