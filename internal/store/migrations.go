package store

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

var gooseSetup sync.Once

// Bootstrap creates a new ledger store at path (or brings an existing one up
// to date) by running the embedded migrations. The resulting store carries
// the Funds table; per-fund ledger tables are created separately, one per
// fund code.
func Bootstrap(path string) error {
	var setupErr error
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrations)
		goose.SetLogger(goose.NopLogger())
		setupErr = goose.SetDialect("sqlite3")
	})
	if setupErr != nil {
		return fmt.Errorf("failed to configure migrations: %w", setupErr)
	}

	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, err)
	}
	defer db.Close()

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}
	return nil
}
