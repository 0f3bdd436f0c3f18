// Package utils provides small helpers shared by the client and the server:
// typed context keys, JSON response writing, the resty client constructor,
// JWT generation and validation, and note ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// It prevents key collisions with other packages that use string keys.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user ID in the context.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
