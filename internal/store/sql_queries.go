package store

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE LOWER(email) = LOWER($1);`
)

const notesTable = "notes"

// noteColumns is the projection shared by every note query.
var noteColumns = []string{"id", "title", "content", "category", "updated_at"}

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func listNotesQuery(userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func createNoteQuery(userID int64, note models.Note) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("id", "user_id", "title", "content", "category").
		Values(note.ID, userID, note.Title, note.Content, note.Category).
		Suffix("RETURNING " + returningNoteColumns()).
		ToSql()
}

func updateNoteQuery(userID int64, note models.Note) (string, []any, error) {
	return psql.Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("category", note.Category).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": note.ID, "user_id": userID}).
		Suffix("RETURNING " + returningNoteColumns()).
		ToSql()
}

func deleteNoteQuery(userID int64, noteID string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func returningNoteColumns() string {
	return strings.Join(noteColumns, ", ")
}
