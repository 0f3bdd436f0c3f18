package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/session"
)

// Client error categories. Every error returned by the client services
// satisfies errors.Is for exactly one of ErrValidation, ErrAuth, ErrFetch
// or ErrSave.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrFetch      = errors.New("failed to fetch notes")
	ErrSave       = errors.New("failed to save note")

	// ErrNoSession is wrapped into ErrFetch/ErrSave when a note operation
	// is attempted without a stored token. No request is sent.
	ErrNoSession = session.ErrNoSession
	// ErrSessionRejected is wrapped into ErrFetch/ErrSave when the server
	// answered 401. The stored session is cleared.
	ErrSessionRejected = errors.New("session rejected by server")

	// ErrNoTokenReceived is returned by login when the server answered 2xx
	// without a token.
	ErrNoTokenReceived = fmt.Errorf("%w: no token received", ErrAuth)
)

// Server errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
)
