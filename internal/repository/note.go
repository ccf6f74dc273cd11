package repository

import (
	"context"

	"critterbook/internal/domain"
)

// NoteRepository performs owner-gated access to notes. Unlike animals, both
// reads and creates are scoped to the user behind the session token: the
// note's user_id is sourced from (or joined against) the session row inside
// a single statement.
type NoteRepository interface {
	Create(ctx context.Context, sessionToken, title, textContent string) (*domain.Note, error)
	GetByID(ctx context.Context, sessionToken string, id int64) (*domain.Note, error)
	List(ctx context.Context, sessionToken string) ([]domain.Note, error)
}
