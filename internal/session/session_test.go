package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T) (*Session, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	return New(repo, logger.Nop()), repo
}

func TestSession_Token_LoadsOnce(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	// репозиторий читается только при первом обращении
	repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil).Times(1)

	for range 3 {
		token, err := s.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	}
}

func TestSession_Token_NotFound(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound).Times(1)

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_Token_BackendErrorRetriesLater(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, errors.New("disk I/O error")),
		repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil),
	)

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrSessionStorage)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestSession_Set(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	repo.EXPECT().SaveSession(gomock.Any(), models.Session{Token: "new"}).Return(nil)

	require.NoError(t, s.Set(ctx, "new"))

	// после Set чтение из репозитория не требуется
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestSession_Set_Empty(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.Set(context.Background(), ""), ErrEmptyToken)
}

func TestSession_Set_BackendErrorKeepsOldToken(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().SaveSession(gomock.Any(), models.Session{Token: "old"}).Return(nil),
		repo.EXPECT().SaveSession(gomock.Any(), models.Session{Token: "new"}).Return(errors.New("readonly database")),
	)

	require.NoError(t, s.Set(ctx, "old"))
	assert.ErrorIs(t, s.Set(ctx, "new"), ErrSessionStorage)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", token)
}

func TestSession_Clear(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_Clear_BackendErrorStillDropsToken(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteSession(gomock.Any()).Return(errors.New("locked"))

	require.NoError(t, s.Set(ctx, "tok"))
	assert.ErrorIs(t, s.Clear(ctx), ErrSessionStorage)

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s, repo := newTestSession(t)
	ctx := context.Background()

	repo.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil).MaxTimes(1)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Set(ctx, "tok")
				return
			}
			_, _ = s.Token(ctx)
		}()
	}
	wg.Wait()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
