package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same normalized email already
	// exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when an attempt to register a new
	// user fails because another user already registered the same phone
	// number.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoStudentDetails is returned when a user has not yet submitted an
	// academic record. This is an expected, branchable outcome, not a
	// server fault: every derivation caller surfaces it distinctly.
	ErrNoStudentDetails = errors.New("no student details found")
)

// Low-level storage errors. These are returned (or wrapped) when an I/O or
// SQL-level operation fails before any domain logic can be applied. They are
// reported to the caller, never fatal to the process.
var (
	// ErrSnapshotRead is returned when the snapshot file exists but cannot
	// be read or decoded. A missing file is a cold start, not this error.
	ErrSnapshotRead = errors.New("error reading snapshot file")

	// ErrSnapshotWrite is returned when persisting the snapshot file fails.
	ErrSnapshotWrite = errors.New("error writing snapshot file")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
