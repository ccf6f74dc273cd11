package repository

import (
	"context"

	"critterbook/internal/domain"
)

// UserRepository defines persistence operations for User entities.
//
// Absence is a normal outcome on every lookup: a nil entity with a nil
// error means no row matched. Errors are reserved for the backing store
// misbehaving.
type UserRepository interface {
	// Create inserts a new user. A uniqueness violation yields (nil, nil)
	// rather than an error; the caller treats nil as "registration failed".
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetWithHashByUsername is the only read that exposes the password
	// hash. Login is its sole caller.
	GetWithHashByUsername(ctx context.Context, username string) (*domain.UserWithHash, error)
}
