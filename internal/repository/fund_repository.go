package repository

import (
	"fmt"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
)

// FundRepository provides data access methods for the Funds table of one
// ledger store. It is bound to a scoped store connection and lives no longer
// than the request that opened it.
type FundRepository struct {
	store *store.Store
}

// NewFundRepository creates a new FundRepository over an open store.
func NewFundRepository(s *store.Store) *FundRepository {
	return &FundRepository{store: s}
}

// GetFunds retrieves all funds from the Funds table in insertion order.
// Returns an empty slice if the table has no rows.
func (r *FundRepository) GetFunds() ([]model.Fund, error) {
	rs, err := r.store.Execute("SELECT Fund, Status FROM Funds")
	if err != nil {
		return nil, err
	}

	funds := []model.Fund{}
	for _, row := range rs.Rows {
		code, err := asString(row[0])
		if err != nil {
			return nil, fmt.Errorf("failed to scan Funds table results: %w", err)
		}
		status, err := asString(row[1])
		if err != nil {
			return nil, fmt.Errorf("failed to scan Funds table results: %w", err)
		}
		funds = append(funds, model.Fund{Code: code, Status: model.FundStatus(status)})
	}

	return funds, nil
}

// GetSelectableFunds retrieves the funds a user may select: rows of the
// Funds table whose code matches an existing ledger table. A fund with no
// matching table is invalid and excluded.
func (r *FundRepository) GetSelectableFunds() ([]model.Fund, error) {
	funds, err := r.GetFunds()
	if err != nil {
		return nil, err
	}

	tables, err := r.store.ListTables()
	if err != nil {
		return nil, err
	}
	tableSet := make(map[string]bool, len(tables))
	for _, name := range tables {
		tableSet[name] = true
	}

	selectable := []model.Fund{}
	for _, f := range funds {
		if tableSet[f.Code] {
			selectable = append(selectable, f)
		}
	}

	return selectable, nil
}

// InsertFund adds a fund to the Funds table.
func (r *FundRepository) InsertFund(code string, status model.FundStatus) error {
	_, err := r.store.Execute("INSERT INTO Funds (Fund, Status) VALUES (?, ?)", code, string(status))
	return err
}

// HasLedgerTable reports whether a ledger table exists for the given fund code.
func (r *FundRepository) HasLedgerTable(code string) (bool, error) {
	tables, err := r.store.ListTables()
	if err != nil {
		return false, err
	}
	for _, name := range tables {
		if name == code {
			return true, nil
		}
	}
	return false, nil
}
