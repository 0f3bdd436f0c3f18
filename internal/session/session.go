// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's authentication token.
//
// The token is kept in memory behind a RWMutex and mirrored to a durable
// [store.SessionRepository] so it survives restarts. The first read loads
// it lazily from the repository.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	// ErrNoSession is returned by [Session.Token] when no token is stored.
	ErrNoSession = errors.New("no active session")
	// ErrEmptyToken is returned by [Session.Set] for an empty token.
	ErrEmptyToken = errors.New("session token is empty")
	// ErrSessionStorage wraps failures of the durable backend.
	ErrSessionStorage = errors.New("session storage failure")
)

// Session is the single token store of a client profile. It is safe for
// concurrent use.
type Session struct {
	repo   store.SessionRepository
	logger *logger.Logger

	mu     sync.RWMutex
	token  string
	loaded bool
}

func New(repo store.SessionRepository, logger *logger.Logger) *Session {
	return &Session{repo: repo, logger: logger}
}

// Token returns the current token or [ErrNoSession].
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		token := s.token
		s.mu.RUnlock()
		return tokenOrErr(token)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return "", err
	}

	return tokenOrErr(s.token)
}

// Set persists token, replacing any previous one. The in-memory token is
// only updated once the backend accepted it.
func (s *Session) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveSession(ctx, models.Session{Token: token}); err != nil {
		s.logger.Err(err).Str("func", "*Session.Set").Msg("error persisting session")
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	s.token = token
	s.loaded = true

	return nil
}

// Clear destroys the session. The in-memory token is dropped even when the
// backend fails, in which case the error is still returned.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true

	if err := s.repo.DeleteSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "*Session.Clear").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	return nil
}

func (s *Session) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	stored, err := s.repo.GetSession(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		s.token = ""
	case err != nil:
		s.logger.Err(err).Str("func", "*Session.loadLocked").Msg("error loading session")
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	default:
		s.token = stored.Token
	}

	s.loaded = true
	return nil
}

func tokenOrErr(token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}
