package repository

import (
	"fmt"
	"sort"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/validation"
)

// LedgerRepository provides data access methods for per-fund ledger tables.
// Each fund has one table, named by its code, holding dated Credit/Close rows.
type LedgerRepository struct {
	store *store.Store
}

// NewLedgerRepository creates a new LedgerRepository over an open store.
func NewLedgerRepository(s *store.Store) *LedgerRepository {
	return &LedgerRepository{store: s}
}

// GetEntries retrieves all ledger entries for one fund, sorted by ascending
// parsed date. The textual MM-DD-YYYY encoding does not sort chronologically,
// so ordering happens here, after parsing; downstream cumulative and lag
// computations depend on this order.
//
// Returns an empty slice for a fund whose table holds no rows.
func (r *LedgerRepository) GetEntries(fund string) ([]model.LedgerEntry, error) {
	// Table names cannot be parameterized; the code is validated against the
	// identifier set before interpolation.
	if err := validation.ValidateFundCode(fund); err != nil {
		return nil, err
	}

	rs, err := r.store.Execute(fmt.Sprintf(`SELECT Date, Credit, Close FROM "%s"`, fund))
	if err != nil {
		return nil, err
	}

	entries := []model.LedgerEntry{}
	for _, row := range rs.Rows {
		dateStr, err := asString(row[0])
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger table %s: %w", fund, err)
		}
		date, err := ParseLedgerDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("ledger table %s: %w", fund, err)
		}
		credit, err := asFloat(row[1])
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger table %s: %w", fund, err)
		}
		closeValue, err := asFloat(row[2])
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger table %s: %w", fund, err)
		}
		entries = append(entries, model.LedgerEntry{Date: date, Credit: credit, Close: closeValue})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}

// InsertEntry adds one dated row to a fund's ledger table.
func (r *LedgerRepository) InsertEntry(fund string, entry model.LedgerEntry) error {
	if err := validation.ValidateFundCode(fund); err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO "%s" (Date, Credit, Close) VALUES (?, ?, ?)`, fund)
	_, err := r.store.Execute(query, FormatLedgerDate(entry.Date), entry.Credit, entry.Close)
	return err
}

// CreateLedgerTable creates the ledger table for a fund code. Date is the
// primary key; Credit defaults to zero for rows that record a closing value
// without a contribution.
func (r *LedgerRepository) CreateLedgerTable(fund string) error {
	if err := validation.ValidateFundCode(fund); err != nil {
		return err
	}

	query := fmt.Sprintf(`CREATE TABLE "%s" (
		Date VARCHAR(10) NOT NULL,
		Credit REAL DEFAULT 0.0,
		Close REAL NOT NULL,
		PRIMARY KEY (Date)
	)`, fund)
	_, err := r.store.Execute(query)
	return err
}
