package repository

import (
	"context"

	"critterbook/internal/domain"
)

// AnimalRepository performs session-gated writes and open reads on animal
// records.
//
// Every mutation embeds the authorization predicate (token exists and has
// not expired) in the same SQL statement as the effect, so validating the
// session and mutating the row happen atomically. A mutation that matched
// no session, or no target row, returns (nil, nil).
type AnimalRepository interface {
	Create(ctx context.Context, sessionToken string, fields domain.AnimalFields) (*domain.Animal, error)
	Update(ctx context.Context, sessionToken string, id int64, fields domain.AnimalFields) (*domain.Animal, error)
	// Delete returns the deleted row's prior state.
	Delete(ctx context.Context, sessionToken string, id int64) (*domain.Animal, error)
	// GetByID and List require no session. Read-open access is intentional.
	GetByID(ctx context.Context, id int64) (*domain.Animal, error)
	List(ctx context.Context) ([]domain.Animal, error)
}
