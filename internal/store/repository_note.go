// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{db: db, logger: logger}
}

// ListNotes returns the user's notes ordered by creation time.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := listNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// CreateNote inserts note with its caller-assigned ID.
func (r *noteRepository) CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	query, args, err := createNoteQuery(userID, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*noteRepository.CreateNote", query, args)
}

// UpdateNote overwrites title, content and category of a note owned by userID.
func (r *noteRepository) UpdateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	query, args, err := updateNoteQuery(userID, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*noteRepository.UpdateNote", query, args)
}

// DeleteNote removes a note owned by userID.
func (r *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteNoteQuery(userID, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) scanOne(ctx context.Context, fn, query string, args []any) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error writing note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}
