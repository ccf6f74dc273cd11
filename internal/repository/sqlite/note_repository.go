package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

// NoteRepository scopes every statement to the owner behind the session
// token. Creates source user_id from the session row; reads inner-join the
// sessions relation on both token and owner, so another user's notes match
// zero rows no matter how valid the session is.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, sessionToken, title, textContent string) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
INSERT INTO notes (user_id, title, text_content)
SELECT user_id, ?, ?
FROM sessions
WHERE sessions.token = ?
	AND sessions.expiry_timestamp > `+nowEpoch+`
RETURNING id, user_id, title, text_content`,
		title,
		textContent,
		sessionToken,
	)
	return scanNote(row)
}

func (r *NoteRepository) GetByID(ctx context.Context, sessionToken string, id int64) (*domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT notes.id, notes.user_id, notes.title, notes.text_content
FROM notes
INNER JOIN sessions ON (
	sessions.token = ?
	AND sessions.user_id = notes.user_id
	AND sessions.expiry_timestamp > `+nowEpoch+`
)
WHERE notes.id = ?`,
		sessionToken,
		id,
	)
	return scanNote(row)
}

func (r *NoteRepository) List(ctx context.Context, sessionToken string) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT notes.id, notes.user_id, notes.title, notes.text_content
FROM notes
INNER JOIN sessions ON (
	sessions.token = ?
	AND sessions.user_id = notes.user_id
	AND sessions.expiry_timestamp > `+nowEpoch+`
)
ORDER BY notes.id`,
		sessionToken,
	)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.TextContent); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

func scanNote(row *sql.Row) (*domain.Note, error) {
	var note domain.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.TextContent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &note, nil
}
