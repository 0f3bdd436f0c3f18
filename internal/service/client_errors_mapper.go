// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

// mapAdapterError wraps the adapter's transport error into category.
// Outside of the auth flow a 401 additionally carries [ErrSessionRejected].
func mapAdapterError(category, err error) error {
	if err == nil {
		return nil
	}

	if category != ErrAuth && errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w: %w", category, ErrSessionRejected, err)
	}

	return fmt.Errorf("%w: %w", category, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
