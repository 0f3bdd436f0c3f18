package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteRepo(t *testing.T) (NoteRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewNoteRepository(&DB{DB: db, logger: l}, l), mock
}

func TestListNotes_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, title, content, category, updated_at FROM notes WHERE user_id = \$1 ORDER BY created_at, id`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow("n1", "T1", "C1", "work", now).
			AddRow("n2", "T2", "C2", "home", now))

	notes, err := repo.ListNotes(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n1", notes[0].ID)
	assert.Equal(t, "home", notes[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnRows(sqlmock.NewRows(noteColumns))

	notes, err := repo.ListNotes(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListNotes_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notes").WillReturnError(errors.New("conn reset"))

		_, err := repo.ListNotes(context.Background(), 5)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("n1"))

		_, err := repo.ListNotes(context.Background(), 5)
		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notes").
			WillReturnRows(sqlmock.NewRows(noteColumns).
				AddRow("n1", "T", "C", "work", time.Now()).
				RowError(0, errors.New("broken row")))

		_, err := repo.ListNotes(context.Background(), 5)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := models.Note{ID: "n1", Title: "T", Content: "C", Category: "work"}
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO notes (.+) VALUES (.+) RETURNING id, title, content, category, updated_at`).
		WithArgs("n1", int64(3), "T", "C", "work").
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow("n1", "T", "C", "work", now))

	created, err := repo.CreateNote(context.Background(), 3, note)

	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)
	assert.Equal(t, now, created.UpdatedAt)
}

func TestCreateNote_DBError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateNote(context.Background(), 3, models.Note{ID: "n1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := models.Note{ID: "n1", Title: "T2", Content: "C2", Category: "home"}

	mock.ExpectQuery(`UPDATE notes SET title = \$1, content = \$2, category = \$3, updated_at = NOW\(\) WHERE id = \$4 AND user_id = \$5`).
		WithArgs("T2", "C2", "home", "n1", int64(3)).
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow("n1", "T2", "C2", "home", time.Now()))

	updated, err := repo.UpdateNote(context.Background(), 3, note)

	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNote_ForeignOrMissing(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("UPDATE notes").WillReturnRows(sqlmock.NewRows(noteColumns))

	_, err := repo.UpdateNote(context.Background(), 3, models.Note{ID: "other-users-note"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrNoteNotFound},
		{name: "db error", execErr: errors.New("timeout"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)

			exp := mock.ExpectExec(`DELETE FROM notes WHERE id = \$1 AND user_id = \$2`).WithArgs("n1", int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteNote(context.Background(), 3, "n1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
