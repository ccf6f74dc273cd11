package repository

import (
	"context"

	"critterbook/internal/domain"
)

// SessionRepository persists and validates opaque session tokens. It never
// generates tokens; the auth service hands them in fully formed.
type SessionRepository interface {
	// Create inserts a session with a fixed 24h TTL from now.
	Create(ctx context.Context, token string, userID int64) (*domain.Session, error)
	// Validate returns the session only if the token exists and has not
	// expired at the database clock's instant of evaluation. (nil, nil)
	// means no valid session, which is a normal outcome.
	Validate(ctx context.Context, token string) (*domain.Session, error)
	// DeleteExpired sweeps rows whose expiry is in the past and reports
	// how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
