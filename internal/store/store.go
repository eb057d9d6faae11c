// Package store implements the storage accessor for SQLite ledger stores:
// scoped connections, table introspection, and parameterized statement
// execution with a typed error surface.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/database"
)

// Store is a scoped connection to one ledger store. It is acquired for the
// duration of a single logical operation and must be released with Close on
// every exit path; it is not shared across requests.
type Store struct {
	path string
	db   *sql.DB
}

// RowSet is the tabular result of a statement: column names plus rows of
// engine-typed values. Statements that produce no result set yield an empty
// RowSet.
type RowSet struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the row set contains no rows.
func (rs RowSet) Empty() bool {
	return len(rs.Rows) == 0
}

// Statement prefixes that mutate the store and are committed atomically.
var mutatingPrefixes = []string{"INSERT", "UPDATE", "DELETE", "CREATE", "DROP"}

// Open establishes a connection to the ledger store at path. Any failure
// (missing file, invalid format, I/O error) is reported as ErrConnectionFailure.
// The store must already exist; Bootstrap creates new ones.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, err)
	}
	return &Store{path: path, db: db}, nil
}

// Close releases the connection. Safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the store path this accessor is bound to.
func (s *Store) Path() string {
	return s.path
}

// DB exposes the underlying handle for callers that need raw access
// (health checks, test fixtures).
func (s *Store) DB() *sql.DB {
	return s.db
}

// ListTables returns the names of all tables present in the store.
func (s *Store) ListTables() ([]string, error) {
	return listTables(s.db)
}

// ListTablesIn introspects the tables of a different store at path, then
// restores the connection to the original store. The restore happens whether
// or not the query on the other store succeeds.
func (s *Store) ListTablesIn(path string) (tables []string, err error) {
	if path == "" || path == s.path {
		return s.ListTables()
	}

	if cerr := s.db.Close(); cerr != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, cerr)
	}
	s.db = nil

	// Restore the original connection on all paths.
	defer func() {
		db, oerr := database.Open(s.path)
		if oerr != nil {
			if err == nil {
				err = fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, oerr)
			}
			return
		}
		s.db = db
	}()

	other, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailure, err)
	}
	defer other.Close()

	return listTables(other)
}

// Execute runs one parameterized statement against the store.
//
// Placeholders may be written as ? or %s; the count must match len(params)
// exactly (ErrParameterMismatch, checked before execution). Mutating
// statements (insert/update/delete/create/drop, by case-insensitive prefix)
// are committed atomically and return an empty RowSet. Read statements
// return the full row set with column names. Engine failures are translated
// to ErrQueryFailure carrying the original message.
func (s *Store) Execute(query string, params ...any) (RowSet, error) {
	query = strings.ReplaceAll(query, "%s", "?")
	if n := strings.Count(query, "?"); n != len(params) {
		return RowSet{}, fmt.Errorf("%w: query has %d placeholders, got %d parameters",
			apperrors.ErrParameterMismatch, n, len(params))
	}

	if isMutating(query) {
		tx, err := s.db.Begin()
		if err != nil {
			return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
		}
		if _, err := tx.Exec(query, params...); err != nil {
			tx.Rollback()
			return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
		}
		if err := tx.Commit(); err != nil {
			return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
		}
		return RowSet{}, nil
	}

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}

	result := RowSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		scanDest := make([]any, len(columns))
		for i := range values {
			scanDest[i] = &values[i]
		}
		if err := rows.Scan(scanDest...); err != nil {
			return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return RowSet{}, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}

	return result, nil
}

func isMutating(query string) bool {
	upper := strings.ToUpper(strings.TrimSpace(query))
	for _, prefix := range mutatingPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQueryFailure, err)
	}

	return tables, nil
}
