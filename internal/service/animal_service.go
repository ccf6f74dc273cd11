package service

import (
	"context"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

// AnimalService exposes animal CRUD. Writes carry the caller's session
// token down to the gated store; reads carry nothing because animal reads
// are intentionally open.
type AnimalService interface {
	Create(ctx context.Context, sessionToken string, fields domain.AnimalFields) (*domain.Animal, error)
	Update(ctx context.Context, sessionToken string, id int64, fields domain.AnimalFields) (*domain.Animal, error)
	Delete(ctx context.Context, sessionToken string, id int64) (*domain.Animal, error)
	Get(ctx context.Context, id int64) (*domain.Animal, error)
	List(ctx context.Context) ([]domain.Animal, error)
}

type animalService struct {
	animals repository.AnimalRepository
}

func NewAnimalService(animals repository.AnimalRepository) AnimalService {
	return &animalService{animals: animals}
}

// A nil row back from a gated mutation means the session gate (or the
// target id filter) matched nothing even though the surface checks passed,
// e.g. the session expired between the presence check and the statement.
func (s *animalService) Create(ctx context.Context, sessionToken string, fields domain.AnimalFields) (*domain.Animal, error) {
	animal, err := s.animals.Create(ctx, sessionToken, fields)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.NewError(domain.KindOperationFailed, "Failed to create animal")
	}
	return animal, nil
}

func (s *animalService) Update(ctx context.Context, sessionToken string, id int64, fields domain.AnimalFields) (*domain.Animal, error) {
	animal, err := s.animals.Update(ctx, sessionToken, id, fields)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.NewError(domain.KindOperationFailed, "Failed to update animal")
	}
	return animal, nil
}

func (s *animalService) Delete(ctx context.Context, sessionToken string, id int64) (*domain.Animal, error) {
	animal, err := s.animals.Delete(ctx, sessionToken, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.NewError(domain.KindOperationFailed, "Failed to delete animal")
	}
	return animal, nil
}

func (s *animalService) Get(ctx context.Context, id int64) (*domain.Animal, error) {
	return s.animals.GetByID(ctx, id)
}

func (s *animalService) List(ctx context.Context) ([]domain.Animal, error) {
	return s.animals.List(ctx)
}
