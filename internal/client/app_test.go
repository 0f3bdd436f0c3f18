package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUI replays scripted results and records the notices it was shown.
type fakeUI struct {
	logins  []error
	exits   []tui.Exit
	notices []string
	mains   int
}

func (f *fakeUI) LoginFlow(_ context.Context, notice string) error {
	f.notices = append(f.notices, notice)
	if len(f.logins) == 0 {
		return tui.ErrUserQuit
	}
	err := f.logins[0]
	f.logins = f.logins[1:]
	return err
}

func (f *fakeUI) MainLoop(context.Context) (tui.Exit, error) {
	f.mains++
	if len(f.exits) == 0 {
		return tui.ExitQuit, nil
	}
	exit := f.exits[0]
	f.exits = f.exits[1:]
	return exit, nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	return NewApp(&service.ClientServices{AuthService: auth}, ui, logger.Nop()), auth
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{exits: []tui.Exit{tui.ExitQuit}}
	a, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return("token", nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, ui.notices)
	assert.Equal(t, 1, ui.mains)
}

func TestApp_LoginThenLogoutThenQuit(t *testing.T) {
	ui := &fakeUI{
		logins: []error{nil},
		exits:  []tui.Exit{tui.ExitLogout},
	}
	a, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return("", service.ErrNoSession)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"", app.UILogoutSuccess}, ui.notices)
	assert.Equal(t, 1, ui.mains)
}

func TestApp_SessionEndedReturnsToLogin(t *testing.T) {
	ui := &fakeUI{
		logins: []error{nil},
		exits:  []tui.Exit{tui.ExitSessionEnded, tui.ExitQuit},
	}
	a, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return("token", nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{app.UISessionExpired}, ui.notices)
	assert.Equal(t, 2, ui.mains)
}

func TestApp_QuitFromLogin(t *testing.T) {
	ui := &fakeUI{}
	a, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return("", service.ErrNoSession)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 0, ui.mains)
}

func TestApp_Errors(t *testing.T) {
	t.Run("restore fails", func(t *testing.T) {
		a, auth := newTestApp(t, &fakeUI{})
		storageErr := errors.New("disk I/O error")
		auth.EXPECT().RestoreSession(gomock.Any()).Return("", storageErr)

		err := a.Run(context.Background())
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("ui fails", func(t *testing.T) {
		uiErr := errors.New("no tty")
		a, auth := newTestApp(t, &fakeUI{logins: []error{uiErr}})
		auth.EXPECT().RestoreSession(gomock.Any()).Return("", service.ErrNoSession)

		err := a.Run(context.Background())
		assert.ErrorIs(t, err, uiErr)
	})
}
