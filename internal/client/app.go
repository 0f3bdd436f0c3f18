package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{auth: services.AuthService, ui: ui, logger: logger}
}

// Run is the session gate. A token persisted by a previous run opens the
// notes page directly; otherwise the login flow runs first. Logging out or
// losing the session returns to the login flow. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	_, err := a.auth.RestoreSession(ctx)
	switch {
	case errors.Is(err, service.ErrNoSession):
		if err = a.ui.LoginFlow(ctx, ""); err != nil {
			return quitOrErr(err)
		}
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	default:
		a.logger.Info().Msg("session restored")
	}

	for {
		exit, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("notes page: %w", err)
		}

		var notice string
		switch exit {
		case tui.ExitLogout:
			notice = app.UILogoutSuccess
		case tui.ExitSessionEnded:
			a.logger.Warn().Msg("session ended by the server")
			notice = app.UISessionExpired
		default:
			return nil
		}

		if err = a.ui.LoginFlow(ctx, notice); err != nil {
			return quitOrErr(err)
		}
	}
}

func quitOrErr(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return fmt.Errorf("login flow: %w", err)
}
