// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores a persisted session, gates the notes page behind the login
// flow and returns to that flow after a logout or a rejected session.
package client
