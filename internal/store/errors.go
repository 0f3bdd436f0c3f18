package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLocalSessionNotFound is returned when the client has no stored session.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrEmptySessionToken is returned when saving a session without a token.
	ErrEmptySessionToken = errors.New("session token is empty")

	// ErrEmailAlreadyExists is returned when a user with the same email
	// (case-insensitive) is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result set fails mid-iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
