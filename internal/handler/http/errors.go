package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// A malformed header is reported as [utils.ErrInvalidAuthorizationHeader].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
