package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session expiring a fixed TTL from the database clock.
func (r *SessionRepository) Create(ctx context.Context, token string, userID int64) (*domain.Session, error) {
	var (
		session domain.Session
		expiry  int64
	)
	err := r.db.QueryRowContext(ctx, `
INSERT INTO sessions (token, user_id, expiry_timestamp)
VALUES (?, ?, `+nowEpoch+` + ?)
RETURNING id, token, user_id, expiry_timestamp`,
		token,
		userID,
		int64(domain.SessionTTL.Seconds()),
	).Scan(&session.ID, &session.Token, &session.UserID, &expiry)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	session.ExpiryTimestamp = time.Unix(expiry, 0).UTC()
	return &session, nil
}

// Validate returns the session row only while its expiry is still in the
// future at the database clock. Absence is a normal outcome.
func (r *SessionRepository) Validate(ctx context.Context, token string) (*domain.Session, error) {
	var (
		session domain.Session
		expiry  int64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, token, user_id, expiry_timestamp
FROM sessions
WHERE token = ?
	AND expiry_timestamp > `+nowEpoch,
		token,
	).Scan(&session.ID, &session.Token, &session.UserID, &expiry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	session.ExpiryTimestamp = time.Unix(expiry, 0).UTC()
	return &session, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM sessions
WHERE expiry_timestamp <= `+nowEpoch)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired sessions rows affected: %w", err)
	}
	return n, nil
}
