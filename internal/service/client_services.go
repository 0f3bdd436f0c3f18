package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientServices bundles the client services around one session and one
// note cache.
type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
	Cache       *NoteCache
}

func NewClientServices(session SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	cache := NewNoteCache()

	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, session, cache, logger),
		NoteService: NewClientNoteService(serverAdapter, session, cache, logger),
		Cache:       cache,
	}
}
