package testutil

import (
	"testing"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/repository"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Active fund with an empty ledger table
//	fund := testutil.NewFund("VOO").Build(t, path)
//
//	// Inactive fund listed in Funds but with no ledger table
//	fund := testutil.NewFund("GONE").
//	    WithStatus(model.FundStatusInactive).
//	    WithoutLedgerTable().
//	    Build(t, path)
type FundBuilder struct {
	Code        string
	Status      model.FundStatus
	createTable bool
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund(code string) *FundBuilder {
	return &FundBuilder{
		Code:        code,
		Status:      model.FundStatusActive,
		createTable: true,
	}
}

// WithStatus sets the fund status.
func (b *FundBuilder) WithStatus(status model.FundStatus) *FundBuilder {
	b.Status = status
	return b
}

// WithoutLedgerTable lists the fund in the Funds table without creating a
// matching ledger table, producing an invalid (non-selectable) fund.
func (b *FundBuilder) WithoutLedgerTable() *FundBuilder {
	b.createTable = false
	return b
}

// Build inserts the fund into the store at path.
func (b *FundBuilder) Build(t *testing.T, path string) model.Fund {
	t.Helper()

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to open store for fund %s: %v", b.Code, err)
	}
	defer st.Close()

	if err := repository.NewFundRepository(st).InsertFund(b.Code, b.Status); err != nil {
		t.Fatalf("Failed to insert fund %s: %v", b.Code, err)
	}
	if b.createTable {
		if err := repository.NewLedgerRepository(st).CreateLedgerTable(b.Code); err != nil {
			t.Fatalf("Failed to create ledger table %s: %v", b.Code, err)
		}
	}

	return model.Fund{Code: b.Code, Status: b.Status}
}

// LedgerBuilder accumulates dated rows for one fund's ledger table.
//
// Example usage:
//
//	testutil.NewLedger("VOO").
//	    WithEntry("01-01-2023", 1000, 1000).
//	    WithEntry("01-02-2023", 0, 1010).
//	    Build(t, path)
type LedgerBuilder struct {
	fund    string
	entries []model.LedgerEntry
}

// NewLedger creates a LedgerBuilder for a fund whose ledger table exists.
func NewLedger(fund string) *LedgerBuilder {
	return &LedgerBuilder{fund: fund}
}

// WithEntry adds one row; date uses the stored MM-DD-YYYY encoding.
func (b *LedgerBuilder) WithEntry(date string, credit, closeValue float64) *LedgerBuilder {
	parsed, err := repository.ParseLedgerDate(date)
	if err != nil {
		panic("testutil: bad ledger date " + date)
	}
	b.entries = append(b.entries, model.LedgerEntry{Date: parsed, Credit: credit, Close: closeValue})
	return b
}

// Build inserts the accumulated rows into the store at path.
func (b *LedgerBuilder) Build(t *testing.T, path string) {
	t.Helper()

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to open store for ledger %s: %v", b.fund, err)
	}
	defer st.Close()

	ledgerRepo := repository.NewLedgerRepository(st)
	for _, entry := range b.entries {
		if err := ledgerRepo.InsertEntry(b.fund, entry); err != nil {
			t.Fatalf("Failed to insert ledger entry for %s: %v", b.fund, err)
		}
	}
}
