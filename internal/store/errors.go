package store

import "errors"

// Low-level storage errors. Repository methods wrap the driver error with one
// of these; callers match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a session row fails.
	ErrScanningRows = errors.New("failed to scan session rows")

	// ErrInvalidRecord is returned by Save when the record has no user id.
	ErrInvalidRecord = errors.New("session record has no user id")

	// ErrEmptyStorePath is returned when a file store is given no path.
	ErrEmptyStorePath = errors.New("session store path is empty")

	// ErrReadingStore is returned when a file or key-value store cannot be
	// read or decoded.
	ErrReadingStore = errors.New("error reading session store")

	// ErrWritingStore is returned when a file or key-value store cannot be
	// written.
	ErrWritingStore = errors.New("error writing session store")
)
