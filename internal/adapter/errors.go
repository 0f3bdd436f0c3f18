package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status code")

	// ErrInvalidAddress is returned by [NewHTTPServerAdapter] for an empty
	// or unparsable base URL.
	ErrInvalidAddress = errors.New("invalid server address")
)
