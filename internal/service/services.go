package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(bcrypt.DefaultCost), cfg, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
