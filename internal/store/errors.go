package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user or an admin cannot be
	// created because the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdminNotFound is returned when no admin matches the lookup.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrBoxNotFound is returned when no box matches the id or name.
	ErrBoxNotFound = errors.New("box not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the box version (or the user's time of use) changed between the read
	// and the write, so the write was not applied.
	ErrVersionConflict = errors.New("box version conflict occurred")

	// ErrStorageUnavailable wraps driver errors that PostgreSQL classifies
	// as transient (lost connection, serialization failure, deadlock).
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingSlots is returned when the slot sequence of a box cannot be
	// serialized to JSON.
	ErrEncodingSlots = errors.New("failed to encode box slots")
)
