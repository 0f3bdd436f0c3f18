package service

import (
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_ShareOneCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := NewClientServices(mock.NewMockSessionStore(ctrl), mock.NewMockServerAdapter(ctrl), logger.Nop())

	auth := services.AuthService.(*clientAuthService)
	notes := services.NoteService.(*clientNoteService)

	assert.Same(t, services.Cache, auth.cache)
	assert.Same(t, services.Cache, notes.cache)
}
