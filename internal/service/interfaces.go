// Package service holds the business logic of both binaries.
//
// Server side: [AuthService] (accounts and tokens) and [NoteService]
// (per-user notes). Client side: [ClientAuthService], [ClientNoteService]
// and the [NoteCache] they share.
package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of one user at a time. Notes of other
// users are reported as [store.ErrNoteNotFound].
type NoteService interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error)
	Update(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	Delete(ctx context.Context, userID int64, noteID string) error
}
