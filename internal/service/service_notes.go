package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type idGenerator interface {
	Generate() string
}

type noteService struct {
	noteRepository store.NoteRepository
	ids            idGenerator
	validator      validators.Validator
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		validator:      validators.NewNoteKeeperValidator(),
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// Create assigns a fresh UUIDv7 id to the draft and stores it.
func (s *noteService) Create(ctx context.Context, userID int64, draft models.NoteDraft) (models.Note, error) {
	if userID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := models.Note{
		ID:       s.ids.Generate(),
		Title:    draft.Title,
		Content:  draft.Content,
		Category: draft.Category,
	}

	created, err := s.noteRepository.CreateNote(ctx, userID, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

func (s *noteService) Update(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	if userID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.noteRepository.UpdateNote(ctx, userID, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("note_id", note.ID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, userID int64, noteID string) error {
	if userID <= 0 {
		return ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, models.Note{ID: noteID}, validators.FieldNoteID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
