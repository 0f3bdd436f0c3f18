package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionRepository returns the SQLite implementation of [SessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating local session repository")
	return &localSessionRepository{db: db, logger: logger}
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := r.db.QueryRowContext(ctx, getSession).Scan(&session.Token, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !session.Present() {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if !session.Present() {
		return ErrEmptySessionToken
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.ExecContext(ctx, saveSession, session.Token, session.CreatedAt); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
