// Package store holds persistence for both binaries: the client's SQLite
// session table and the server's PostgreSQL users and notes tables.
package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores note API accounts.
type UserRepository interface {
	// CreateUser returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail matches case-insensitively and returns [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository stores notes scoped to their owner. A note of another user
// is indistinguishable from a missing one ([ErrNoteNotFound]).
type NoteRepository interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}
