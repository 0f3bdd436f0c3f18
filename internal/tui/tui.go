// Package tui is the terminal front end of the note client.
//
// It runs two bubbletea programs: the logged-out flow (menu, login and
// signup pages routed by [RootModel]) and the notes page ([NotesModel]).
// Every failure is shown as one fixed message per operation category.
package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// LoginFlow shows the menu until the user logs in, returning nil, or quits,
// returning [ErrUserQuit]. notice is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) error {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(notice),
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageSignup: NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	t.logger.Info().Msg("login flow finished")
	return nil
}

// MainLoop runs the notes page and reports why it was closed.
func (t *TUI) MainLoop(ctx context.Context) (Exit, error) {
	// stops the invalidation listener together with the page
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewNotesModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return ExitQuit, err
	}

	result, ok := finalModel.(*NotesModel)
	if !ok {
		return ExitQuit, tea.ErrProgramKilled
	}

	t.logger.Info().Int("exit", int(result.Exit())).Msg("notes page closed")
	return result.Exit(), nil
}
