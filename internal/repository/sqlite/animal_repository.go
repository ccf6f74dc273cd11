package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

// AnimalRepository gates every write on session validity inside the
// mutating statement itself: the rows fed into the effect are produced by
// selecting from (or joining against) the sessions relation, so an expired
// or unknown token simply yields zero affected rows. There is no separate
// check-then-act step to race against.
type AnimalRepository struct {
	db *sql.DB
}

func NewAnimalRepository(db *sql.DB) repository.AnimalRepository {
	return &AnimalRepository{db: db}
}

func (r *AnimalRepository) Create(ctx context.Context, sessionToken string, fields domain.AnimalFields) (*domain.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
INSERT INTO animals (first_name, type, accessory)
SELECT ?, ?, ?
FROM sessions
WHERE sessions.token = ?
	AND sessions.expiry_timestamp > `+nowEpoch+`
RETURNING id, first_name, type, accessory`,
		fields.FirstName,
		fields.Type,
		fields.Accessory,
		sessionToken,
	)
	return scanAnimal(row)
}

func (r *AnimalRepository) Update(ctx context.Context, sessionToken string, id int64, fields domain.AnimalFields) (*domain.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
UPDATE animals
SET first_name = ?, type = ?, accessory = ?
FROM sessions
WHERE sessions.token = ?
	AND sessions.expiry_timestamp > `+nowEpoch+`
	AND animals.id = ?
RETURNING animals.id, animals.first_name, animals.type, animals.accessory`,
		fields.FirstName,
		fields.Type,
		fields.Accessory,
		sessionToken,
		id,
	)
	return scanAnimal(row)
}

func (r *AnimalRepository) Delete(ctx context.Context, sessionToken string, id int64) (*domain.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
DELETE FROM animals
WHERE animals.id = ?
	AND EXISTS (
		SELECT 1
		FROM sessions
		WHERE sessions.token = ?
			AND sessions.expiry_timestamp > `+nowEpoch+`
	)
RETURNING id, first_name, type, accessory`,
		id,
		sessionToken,
	)
	return scanAnimal(row)
}

// GetByID requires no session. Read-open access is intentional.
func (r *AnimalRepository) GetByID(ctx context.Context, id int64) (*domain.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, first_name, type, accessory
FROM animals
WHERE id = ?`,
		id,
	)
	return scanAnimal(row)
}

func (r *AnimalRepository) List(ctx context.Context) ([]domain.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, first_name, type, accessory
FROM animals
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select animals: %w", err)
	}
	defer rows.Close()

	var animals []domain.Animal
	for rows.Next() {
		var (
			animal    domain.Animal
			accessory sql.NullString
		)
		if err := rows.Scan(&animal.ID, &animal.FirstName, &animal.Type, &accessory); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		if accessory.Valid {
			animal.Accessory = &accessory.String
		}
		animals = append(animals, animal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate animals: %w", err)
	}
	return animals, nil
}

func scanAnimal(row *sql.Row) (*domain.Animal, error) {
	var (
		animal    domain.Animal
		accessory sql.NullString
	)
	if err := row.Scan(&animal.ID, &animal.FirstName, &animal.Type, &accessory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan animal: %w", err)
	}
	if accessory.Valid {
		animal.Accessory = &accessory.String
	}
	return &animal, nil
}
