package store

import "errors"

// Domain sentinels. Callers match them with [errors.Is].
var (
	// ErrUsernameAlreadyExists is returned when registering a user whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup or update matches no
	// row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when no profile exists for the requested
	// content hash.
	ErrProfileNotFound = errors.New("document profile was not found")
)

// SQL-level sentinels wrapped into repository errors so callers can tell the
// failing phase apart.
var (
	// ErrBuildingSQLQuery marks a failure while assembling a parameterised
	// query, before anything reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery marks a failed statement execution.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow marks a failed column scan of a single-row result.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows marks a failed column scan during multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
