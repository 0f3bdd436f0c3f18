// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// ErrUserQuit is returned by the login flow when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

func signupMessage(err error) string {
	switch {
	case err == nil:
		return app.UISignupSuccess
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.UIInvalidEmail
	case errors.Is(err, validators.ErrPasswordTooShort):
		return app.UIPasswordTooShort
	case errors.Is(err, service.ErrValidation):
		return app.UIRequiredFields
	default:
		return app.UISignupFailed
	}
}

func loginMessage(err error) string {
	switch {
	case err == nil:
		return app.UILoginSuccess
	case errors.Is(err, service.ErrValidation):
		return app.UIRequiredFields
	case errors.Is(err, service.ErrNoTokenReceived):
		return app.UIInvalidCredentials
	default:
		return app.UILoginFailed
	}
}

// saveMessage maps a create/update/delete failure. failed is the fixed
// notice of the operation.
func saveMessage(err error, failed string) string {
	if errors.Is(err, service.ErrValidation) {
		return app.UIRequiredFields
	}
	return failed
}

// sessionEnded reports whether err means the user has to log in again.
func sessionEnded(err error) bool {
	return errors.Is(err, service.ErrNoSession) || errors.Is(err, service.ErrSessionRejected)
}
