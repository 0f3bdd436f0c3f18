package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionStore is the token store shared by the client services and the
// application loop. [session.Session] implements it.
type SessionStore interface {
	// Token returns the stored token or [ErrNoSession].
	Token(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// ClientAuthService defines the client-side contract for the token lifecycle.
type ClientAuthService interface {
	// Signup validates creds locally and registers the account. No token is
	// stored; the user still has to log in.
	// Returns ErrValidation (no request sent) or ErrAuth.
	Signup(ctx context.Context, creds models.Credentials) error

	// Login exchanges email and password for a token and stores it in the
	// session. Returns ErrValidation, ErrNoTokenReceived or ErrAuth.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout clears the session and the cached notes.
	Logout(ctx context.Context) error

	// RestoreSession returns the token persisted by a previous run or
	// ErrNoSession.
	RestoreSession(ctx context.Context) (string, error)
}

// ClientNoteService defines the client-side contract for the remote note
// collection. Every call requires a stored token and sends at most one
// request; failures are never retried.
type ClientNoteService interface {
	// List fetches all notes and replaces the cached list. Errors wrap ErrFetch.
	List(ctx context.Context) ([]models.Note, error)

	// Create, Update and Delete publish a cache invalidation on success.
	// Errors wrap ErrValidation or ErrSave and leave the cache untouched.
	Create(ctx context.Context, draft models.NoteDraft) error
	Update(ctx context.Context, id string, draft models.NoteDraft) error
	Delete(ctx context.Context, id string) error
}
