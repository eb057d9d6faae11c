package apperrors

import "errors"

// Storage errors represent failures opening or querying a ledger store.
// Engine-specific failures are always wrapped in one of these sentinels so
// callers never have to match on driver error strings.
var (
	// ErrConnectionFailure indicates that a ledger store could not be opened
	// (missing file, invalid format, I/O error).
	ErrConnectionFailure = errors.New("failed to connect to ledger store")

	// ErrParameterMismatch indicates that the number of positional
	// placeholders in a query does not match the number of parameters.
	// Detected before the statement is handed to the engine.
	ErrParameterMismatch = errors.New("placeholder count does not match parameter count")

	// ErrQueryFailure indicates that the storage engine rejected or failed a
	// statement. The wrapped message carries the original engine error.
	ErrQueryFailure = errors.New("failed to execute query")
)

// Domain errors represent missing or invalid entities in a ledger store.
var (
	// ErrFundNotFound indicates that a fund has no matching ledger table in
	// the store, or is not listed in the Funds table at all.
	ErrFundNotFound = errors.New("fund not found")

	// ErrNoSelectableFunds indicates that none of the funds listed in the
	// Funds table has a matching ledger table.
	ErrNoSelectableFunds = errors.New("no fund matches an existing ledger table")

	// ErrInvalidFundCode indicates a fund code that cannot name a ledger
	// table (empty, or containing characters outside the identifier set).
	ErrInvalidFundCode = errors.New("invalid fund code")

	// ErrEmptyResult indicates a valid fund whose ledger table holds zero
	// rows. This is a distinguishable empty state, not a hard failure;
	// callers that need at least one row (window summaries) surface it.
	ErrEmptyResult = errors.New("ledger contains no entries")
)

// Selection errors represent failures resolving the active (fund, duration)
// pair from the button-group snapshot.
var (
	// ErrUnknownDurationToken indicates a duration token outside the closed
	// set {Total, YTD, 1YR, 3MO, 1MO, 1WK}.
	ErrUnknownDurationToken = errors.New("unknown duration token")

	// ErrSelectionResolution indicates that a trigger event names a member
	// that cannot be matched to any known member of its button group.
	ErrSelectionResolution = errors.New("cannot resolve selection")
)

// Ingest errors represent failures handling uploaded ledger stores.
var (
	// ErrInvalidStoreFile indicates an uploaded file that is not a .db file.
	ErrInvalidStoreFile = errors.New("uploaded file must have a .db extension")

	// ErrInvalidStoreToken indicates a store token that fails verification,
	// has expired, or names a store that no longer exists on disk.
	ErrInvalidStoreToken = errors.New("invalid or expired store token")
)
