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

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	session       SessionStore
	cache         *NoteCache
	validator     validators.Validator
	logger        *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session SessionStore, cache *NoteCache, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		session:       session,
		cache:         cache,
		validator:     validators.NewNoteKeeperValidator(),
		logger:        logger,
	}
}

func (s *clientAuthService) Signup(ctx context.Context, creds models.Credentials) error {
	if err := s.validator.Validate(ctx, creds, validators.SignupFields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.serverAdapter.Signup(ctx, creds); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Signup").Str("email", creds.Email).Msg("signup failed")
		return mapAdapterError(ErrAuth, err)
	}

	s.logger.Info().Str("email", creds.Email).Msg("account created")
	return nil
}

func (s *clientAuthService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := s.validator.Validate(ctx, creds, validators.LoginFields...); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token, err := s.serverAdapter.Login(ctx, models.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Login").Str("email", creds.Email).Msg("login failed")
		return "", mapAdapterError(ErrAuth, err)
	}
	if token == "" {
		s.logger.Warn().Str("email", creds.Email).Msg("server accepted login without a token")
		return "", ErrNoTokenReceived
	}

	if err = s.session.Set(ctx, token); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}
	// a different account may have logged in
	s.cache.Reset()

	s.logger.Info().Str("email", creds.Email).Msg("logged in")
	return token, nil
}

func (s *clientAuthService) Logout(ctx context.Context) error {
	s.cache.Reset()

	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *clientAuthService) RestoreSession(ctx context.Context) (string, error) {
	token, err := s.session.Token(ctx)
	if errors.Is(err, ErrNoSession) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}

	return token, nil
}
