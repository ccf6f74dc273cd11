package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and reports a uniqueness violation as (nil, nil).
// Registration treats that nil as "username already claimed" after its own
// pre-check lost the race.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (username, password_hash)
VALUES (?, ?)
RETURNING id, username`,
		username,
		passwordHash,
	).Scan(&user.ID, &user.Username)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, nil
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, username
FROM users
WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetWithHashByUsername(ctx context.Context, username string) (*domain.UserWithHash, error) {
	var user domain.UserWithHash
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash
FROM users
WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user with hash: %w", err)
	}
	return &user, nil
}
