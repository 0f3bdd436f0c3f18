// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the terminal front end driven by [App]. [tui.TUI] implements it.
type UI interface {
	// LoginFlow blocks until the user logs in or quits ([tui.ErrUserQuit]).
	LoginFlow(ctx context.Context, notice string) error
	// MainLoop runs the notes page and reports why it closed.
	MainLoop(ctx context.Context) (tui.Exit, error)
}
