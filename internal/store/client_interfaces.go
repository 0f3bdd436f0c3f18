package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single client session.
type SessionRepository interface {
	// GetSession returns [ErrLocalSessionNotFound] when nothing is stored.
	GetSession(ctx context.Context) (models.Session, error)
	// SaveSession overwrites any previously stored session.
	SaveSession(ctx context.Context, session models.Session) error
	// DeleteSession is a no-op when nothing is stored.
	DeleteSession(ctx context.Context) error
}
