package repository

import (
	"fmt"
	"time"
)

// ledgerDateLayout is the textual date encoding used by ledger tables
// (MM-DD-YYYY). Dates must be parsed before any chronological operation;
// the text encoding does not sort chronologically.
const ledgerDateLayout = "01-02-2006"

// ParseLedgerDate parses a ledger table date string (MM-DD-YYYY).
func ParseLedgerDate(str string) (time.Time, error) {
	t, err := time.Parse(ledgerDateLayout, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse ledger date: %w", err)
	}
	return t.UTC(), nil
}

// FormatLedgerDate renders a date in the ledger table encoding (MM-DD-YYYY).
func FormatLedgerDate(t time.Time) string {
	return t.Format(ledgerDateLayout)
}

// asString coerces a row-set value to a string.
func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("expected text value, got %T", v)
	}
}

// asFloat coerces a row-set value to a float64. SQLite's dynamic typing can
// hand back integers for REAL columns when the stored value has no fraction.
func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("expected numeric value, got %T", v)
	}
}
