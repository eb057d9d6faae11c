package repository_test

import (
	"errors"
	"testing"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/repository"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/testutil"
)

func TestLedgerRepository_GetEntries(t *testing.T) {
	t.Run("returns entries sorted by parsed date", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		testutil.NewFund("VOO").Build(t, path)
		// Inserted in an order where the MM-DD-YYYY text sorts differently
		// from the chronology.
		testutil.NewLedger("VOO").
			WithEntry("01-15-2023", 0, 1100).
			WithEntry("12-20-2022", 1000, 1000).
			WithEntry("03-01-2023", 0, 1150).
			Build(t, path)

		st := testutil.OpenStore(t, path)
		entries, err := repository.NewLedgerRepository(st).GetEntries("VOO")
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}

		if len(entries) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if !entries[i-1].Date.Before(entries[i].Date) {
				t.Errorf("Entries out of order at %d: %v then %v", i, entries[i-1].Date, entries[i].Date)
			}
		}
		if entries[0].Credit != 1000 {
			t.Errorf("First entry Credit = %v, want the December row", entries[0].Credit)
		}
	})

	t.Run("returns an empty slice for an empty ledger", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		testutil.NewFund("EMPTY").Build(t, path)

		st := testutil.OpenStore(t, path)
		entries, err := repository.NewLedgerRepository(st).GetEntries("EMPTY")
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("Expected empty slice, got %d entries", len(entries))
		}
	})

	t.Run("rejects fund codes that cannot name a table", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		st := testutil.OpenStore(t, path)

		repo := repository.NewLedgerRepository(st)
		for _, code := range []string{"", "VOO; DROP TABLE Funds", `V"OO`, "1VOO"} {
			if _, err := repo.GetEntries(code); !errors.Is(err, apperrors.ErrInvalidFundCode) {
				t.Errorf("GetEntries(%q): expected ErrInvalidFundCode, got %v", code, err)
			}
		}
	})

	t.Run("fails with QueryFailure when the table is missing", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		st := testutil.OpenStore(t, path)

		_, err := repository.NewLedgerRepository(st).GetEntries("MISSING")
		if !errors.Is(err, apperrors.ErrQueryFailure) {
			t.Errorf("Expected ErrQueryFailure, got %v", err)
		}
	})
}

func TestParseLedgerDate(t *testing.T) {
	t.Run("round-trips the stored encoding", func(t *testing.T) {
		parsed, err := repository.ParseLedgerDate("04-06-2024")
		if err != nil {
			t.Fatalf("ParseLedgerDate() returned unexpected error: %v", err)
		}
		if parsed.Year() != 2024 || parsed.Month() != 4 || parsed.Day() != 6 {
			t.Errorf("ParseLedgerDate() = %v", parsed)
		}
		if got := repository.FormatLedgerDate(parsed); got != "04-06-2024" {
			t.Errorf("FormatLedgerDate() = %q, want 04-06-2024", got)
		}
	})

	t.Run("rejects other encodings", func(t *testing.T) {
		for _, raw := range []string{"2024-04-06", "04/06/2024", "April 6, 2024", ""} {
			if _, err := repository.ParseLedgerDate(raw); err == nil {
				t.Errorf("ParseLedgerDate(%q): expected error", raw)
			}
		}
	})
}
