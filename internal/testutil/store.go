package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
)

// SetupTestStore creates a bootstrapped ledger store (Funds table present,
// no funds) in a per-test temp directory and returns its path. The file is
// removed with the test's temp dir.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    path := testutil.SetupTestStore(t)
//	    testutil.NewFund("VOO").Build(t, path)
//	}
func SetupTestStore(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	if err := store.Bootstrap(path); err != nil {
		t.Fatalf("Failed to bootstrap test store: %v", err)
	}
	return path
}

// OpenStore opens a scoped connection to a test store and closes it when the
// test completes.
func OpenStore(t *testing.T, path string) *store.Store {
	t.Helper()

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}
