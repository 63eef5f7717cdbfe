package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateName is returned when an INSERT into players is rejected
	// by the UNIQUE constraint on player_name. It is the authoritative signal
	// of a lost registration race.
	ErrDuplicateName = errors.New("player name already exists")

	// ErrPlayerNotFound is returned when a lookup by player name produces an
	// empty result set.
	ErrPlayerNotFound = errors.New("player was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan player row")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name it
	// cannot connect with.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
