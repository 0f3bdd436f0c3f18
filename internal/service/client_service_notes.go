package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	serverAdapter adapter.ServerAdapter
	session       SessionStore
	cache         *NoteCache
	validator     validators.Validator
	logger        *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, session SessionStore, cache *NoteCache, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		serverAdapter: serverAdapter,
		session:       session,
		cache:         cache,
		validator:     validators.NewNoteKeeperValidator(),
		logger:        logger,
	}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	token, err := s.token(ctx, ErrFetch)
	if err != nil {
		return nil, err
	}

	ticket := s.cache.Begin()
	notes, err := s.serverAdapter.ListNotes(ctx, token)
	if err != nil {
		return nil, s.failed(ctx, ErrFetch, "*clientNoteService.List", err)
	}

	if !s.cache.Replace(ticket, notes) {
		s.logger.Debug().Uint64("ticket", ticket).Msg("stale note list dropped")
	}

	return s.cache.Notes(), nil
}

func (s *clientNoteService) Create(ctx context.Context, draft models.NoteDraft) error {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token, err := s.token(ctx, ErrSave)
	if err != nil {
		return err
	}

	if err = s.serverAdapter.CreateNote(ctx, token, draft); err != nil {
		return s.failed(ctx, ErrSave, "*clientNoteService.Create", err)
	}

	s.cache.Invalidate()
	return nil
}

func (s *clientNoteService) Update(ctx context.Context, id string, draft models.NoteDraft) error {
	note := models.Note{ID: id, Title: draft.Title, Content: draft.Content, Category: draft.Category}
	if err := s.validator.Validate(ctx, note); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token, err := s.token(ctx, ErrSave)
	if err != nil {
		return err
	}

	if err = s.serverAdapter.UpdateNote(ctx, token, id, draft); err != nil {
		return s.failed(ctx, ErrSave, "*clientNoteService.Update", err)
	}

	s.cache.Invalidate()
	return nil
}

func (s *clientNoteService) Delete(ctx context.Context, id string) error {
	if err := s.validator.Validate(ctx, models.Note{ID: id}, validators.FieldNoteID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token, err := s.token(ctx, ErrSave)
	if err != nil {
		return err
	}

	if err = s.serverAdapter.DeleteNote(ctx, token, id); err != nil {
		return s.failed(ctx, ErrSave, "*clientNoteService.Delete", err)
	}

	s.cache.Invalidate()
	return nil
}

// token reads the session token; absence is reported inside category.
func (s *clientNoteService) token(ctx context.Context, category error) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", category, err)
	}
	return token, nil
}

// failed maps a transport error. A 401 ends the session: the server no
// longer accepts the stored token.
func (s *clientNoteService) failed(ctx context.Context, category error, fn string, err error) error {
	s.logger.Err(err).Str("func", fn).Str("server_message", extractBody(err)).Msg("note request failed")

	if errors.Is(err, adapter.ErrUnauthorized) {
		s.cache.Reset()
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			s.logger.Err(clearErr).Str("func", fn).Msg("error clearing rejected session")
		}
	}

	return mapAdapterError(category, err)
}
