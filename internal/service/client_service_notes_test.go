// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(t *testing.T) (*clientNoteService, *mock.MockServerAdapter, *mock.MockSessionStore, *NoteCache) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionStore(ctrl)
	cache := NewNoteCache()

	svc := NewClientNoteService(mockAdapter, mockSession, cache, logger.Nop()).(*clientNoteService)
	return svc, mockAdapter, mockSession, cache
}

func validNoteDraft() models.NoteDraft {
	return models.NoteDraft{Title: "Plan", Content: "ship it", Category: "Work"}
}

func invalidated(cache *NoteCache) bool {
	select {
	case <-cache.Invalidations():
		return true
	default:
		return false
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientNoteService_List_ReplacesCache(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	notes := []models.Note{{ID: "b", Category: "Home"}, {ID: "a", Category: "Work"}}
	mockSession.EXPECT().Token(ctx).Return("tok", nil)
	mockAdapter.EXPECT().ListNotes(ctx, "tok").Return(notes, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	// порядок сервера сохраняется
	assert.Equal(t, notes, got)
	assert.Equal(t, notes, cache.Notes())
}

func TestClientNoteService_List_FailureKeepsCache(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	before := []models.Note{{ID: "n1"}}
	require.True(t, cache.Replace(cache.Begin(), before))

	mockSession.EXPECT().Token(ctx).Return("tok", nil)
	mockAdapter.EXPECT().ListNotes(ctx, "tok").Return(nil, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrFetch)
	assert.NotErrorIs(t, err, ErrSessionRejected)
	assert.Equal(t, before, cache.Notes())
}

func TestClientNoteService_NoSessionNeverCallsServer(t *testing.T) {
	ctx := context.Background()

	ops := map[string]struct {
		call     func(svc *clientNoteService) error
		category error
	}{
		"list":   {func(svc *clientNoteService) error { _, err := svc.List(ctx); return err }, ErrFetch},
		"create": {func(svc *clientNoteService) error { return svc.Create(ctx, validNoteDraft()) }, ErrSave},
		"update": {func(svc *clientNoteService) error { return svc.Update(ctx, "n1", validNoteDraft()) }, ErrSave},
		"delete": {func(svc *clientNoteService) error { return svc.Delete(ctx, "n1") }, ErrSave},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			// у адаптера нет ожиданий: сетевой вызов провалит тест
			svc, _, mockSession, cache := newTestNoteSvc(t)
			mockSession.EXPECT().Token(ctx).Return("", ErrNoSession)

			err := op.call(svc)
			assert.ErrorIs(t, err, op.category)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.False(t, invalidated(cache))
		})
	}
}

func TestClientNoteService_RejectedSessionIsCleared(t *testing.T) {
	ctx := context.Background()
	unauthorized := fmt.Errorf("%w: token is expired or invalid", adapter.ErrUnauthorized)

	ops := map[string]struct {
		expect   func(a *mock.MockServerAdapter)
		call     func(svc *clientNoteService) error
		category error
	}{
		"list": {
			func(a *mock.MockServerAdapter) { a.EXPECT().ListNotes(ctx, "stale").Return(nil, unauthorized) },
			func(svc *clientNoteService) error { _, err := svc.List(ctx); return err },
			ErrFetch,
		},
		"create": {
			func(a *mock.MockServerAdapter) { a.EXPECT().CreateNote(ctx, "stale", gomock.Any()).Return(unauthorized) },
			func(svc *clientNoteService) error { return svc.Create(ctx, validNoteDraft()) },
			ErrSave,
		},
		"update": {
			func(a *mock.MockServerAdapter) { a.EXPECT().UpdateNote(ctx, "stale", "n1", gomock.Any()).Return(unauthorized) },
			func(svc *clientNoteService) error { return svc.Update(ctx, "n1", validNoteDraft()) },
			ErrSave,
		},
		"delete": {
			func(a *mock.MockServerAdapter) { a.EXPECT().DeleteNote(ctx, "stale", "n1").Return(unauthorized) },
			func(svc *clientNoteService) error { return svc.Delete(ctx, "n1") },
			ErrSave,
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
			require.True(t, cache.Replace(cache.Begin(), []models.Note{{ID: "n1"}}))

			mockSession.EXPECT().Token(ctx).Return("stale", nil)
			op.expect(mockAdapter)
			mockSession.EXPECT().Clear(ctx).Return(nil)

			err := op.call(svc)
			assert.ErrorIs(t, err, op.category)
			assert.ErrorIs(t, err, ErrSessionRejected)
			assert.ErrorIs(t, err, adapter.ErrUnauthorized)
			assert.Empty(t, cache.Notes())
		})
	}
}

func TestClientNoteService_RejectedSession_ClearErrorIsLogged(t *testing.T) {
	svc, mockAdapter, mockSession, _ := newTestNoteSvc(t)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("stale", nil)
	mockAdapter.EXPECT().ListNotes(ctx, "stale").Return(nil, adapter.ErrUnauthorized)
	mockSession.EXPECT().Clear(ctx).Return(errors.New("locked"))

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrSessionRejected)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestClientNoteService_CreateThenListReflectsServer(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	serverNotes := []models.Note{{ID: "srv-1", Title: "Plan", Content: "ship it", Category: "Work"}}

	mockSession.EXPECT().Token(ctx).Return("tok", nil).Times(2)
	gomock.InOrder(
		mockAdapter.EXPECT().CreateNote(ctx, "tok", validNoteDraft()).Return(nil),
		mockAdapter.EXPECT().ListNotes(ctx, "tok").Return(serverNotes, nil),
	)

	require.NoError(t, svc.Create(ctx, validNoteDraft()))

	// локально ничего не добавляется, только сигнал инвалидации
	assert.Empty(t, cache.Notes())
	assert.True(t, invalidated(cache))

	_, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, serverNotes, cache.Notes())
}

func TestClientNoteService_DeleteThenList(t *testing.T) {
	ctx := context.Background()

	t.Run("server drops the row", func(t *testing.T) {
		svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
		require.True(t, cache.Replace(cache.Begin(), []models.Note{{ID: "n1"}, {ID: "n2"}}))

		mockSession.EXPECT().Token(ctx).Return("tok", nil).Times(2)
		mockAdapter.EXPECT().DeleteNote(ctx, "tok", "n1").Return(nil)
		mockAdapter.EXPECT().ListNotes(ctx, "tok").Return([]models.Note{{ID: "n2"}}, nil)

		require.NoError(t, svc.Delete(ctx, "n1"))
		assert.True(t, invalidated(cache))

		_, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Note{{ID: "n2"}}, cache.Notes())
	})

	t.Run("server still returns the row", func(t *testing.T) {
		svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)

		mockSession.EXPECT().Token(ctx).Return("tok", nil).Times(2)
		mockAdapter.EXPECT().DeleteNote(ctx, "tok", "n1").Return(nil)
		mockAdapter.EXPECT().ListNotes(ctx, "tok").Return([]models.Note{{ID: "n1"}, {ID: "n2"}}, nil)

		require.NoError(t, svc.Delete(ctx, "n1"))

		// клиент не исключает строку локально
		_, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Note{{ID: "n1"}, {ID: "n2"}}, cache.Notes())
	})
}

func TestClientNoteService_Update(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("tok", nil)
	mockAdapter.EXPECT().UpdateNote(ctx, "tok", "n1", validNoteDraft()).Return(nil)

	require.NoError(t, svc.Update(ctx, "n1", validNoteDraft()))
	assert.True(t, invalidated(cache))
}

func TestClientNoteService_MutationFailureLeavesCache(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	before := []models.Note{{ID: "n1", Title: "old"}}
	require.True(t, cache.Replace(cache.Begin(), before))

	mockSession.EXPECT().Token(ctx).Return("tok", nil).Times(3)
	mockAdapter.EXPECT().CreateNote(ctx, "tok", gomock.Any()).Return(fmt.Errorf("%w: invalid data provided", adapter.ErrBadRequest))
	mockAdapter.EXPECT().UpdateNote(ctx, "tok", "n1", gomock.Any()).Return(fmt.Errorf("%w: note not found", adapter.ErrNotFound))
	mockAdapter.EXPECT().DeleteNote(ctx, "tok", "n1").Return(errors.New("connection refused"))

	assert.ErrorIs(t, svc.Create(ctx, validNoteDraft()), ErrSave)
	assert.ErrorIs(t, svc.Update(ctx, "n1", validNoteDraft()), ErrSave)
	assert.ErrorIs(t, svc.Delete(ctx, "n1"), ErrSave)

	assert.Equal(t, before, cache.Notes())
	assert.False(t, invalidated(cache))
}

func TestClientNoteService_DraftValidation(t *testing.T) {
	svc, _, _, _ := newTestNoteSvc(t)
	ctx := context.Background()

	draft := validNoteDraft()
	draft.Category = ""

	// валидация выполняется до чтения сессии
	assert.ErrorIs(t, svc.Create(ctx, draft), ErrValidation)
	assert.ErrorIs(t, svc.Update(ctx, "n1", draft), ErrValidation)
	assert.ErrorIs(t, svc.Update(ctx, "", validNoteDraft()), ErrValidation)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrValidation)
}

func TestClientNoteService_StaleListDropped(t *testing.T) {
	svc, mockAdapter, mockSession, cache := newTestNoteSvc(t)
	ctx := context.Background()

	fresh := []models.Note{{ID: "fresh"}}
	stale := []models.Note{{ID: "stale"}}

	mockSession.EXPECT().Token(ctx).Return("tok", nil).Times(2)

	// первый запрос «зависает», пока второй не применит свежий список
	mockAdapter.EXPECT().ListNotes(ctx, "tok").DoAndReturn(func(context.Context, string) ([]models.Note, error) {
		mockAdapter.EXPECT().ListNotes(ctx, "tok").Return(fresh, nil)
		got, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, fresh, got)
		return stale, nil
	})

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, fresh, cache.Notes())
}
