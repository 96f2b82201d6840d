package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCampaignNotFound is returned when a query or update targets a
	// campaign identifier that does not exist in the database.
	ErrCampaignNotFound = errors.New("campaign was not found")

	// ErrDocumentNotFound is returned when a document operation references a
	// content identifier that is not attached to the campaign.
	ErrDocumentNotFound = errors.New("document was not found in campaign")

	// ErrAdminNotFound is returned when an admin lookup by login produces an
	// empty result set.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrAdminAlreadyExists is returned when creating an admin whose login is
	// already taken.
	ErrAdminAlreadyExists = errors.New("admin login already exists")

	// ErrStatusConflict is returned when a conditional status update finds
	// the campaign in a status different from the expected one: the
	// compare-and-swap precondition failed because another writer got there
	// first or the transition was illegal to begin with.
	ErrStatusConflict = errors.New("campaign status precondition failed")

	// ErrCampaignNotSaved is returned when an INSERT completes without error
	// but no row was actually persisted.
	ErrCampaignNotSaved = errors.New("campaign was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
