// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the note client and
// the remote note API.
//
// [ServerAdapter] decouples the service layer from HTTP. Errors defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the note API. It is stateless with respect to
// authentication: callers pass the bearer token to every authenticated call.
type ServerAdapter interface {
	// Signup registers a new account. Any 2xx response is success.
	Signup(ctx context.Context, creds models.Credentials) error

	// Login exchanges email and password for an access token. The returned
	// token is empty when the server answered 2xx without one.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// ListNotes returns the caller's notes in server order.
	ListNotes(ctx context.Context, token string) ([]models.Note, error)

	// CreateNote adds a note built from draft.
	CreateNote(ctx context.Context, token string, draft models.NoteDraft) error

	// UpdateNote replaces title, content and category of note id.
	UpdateNote(ctx context.Context, token, id string, draft models.NoteDraft) error

	// DeleteNote removes note id.
	DeleteNote(ctx context.Context, token, id string) error
}
