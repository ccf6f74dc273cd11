package service

import (
	"context"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

// NoteService exposes owner-gated note access. Every call, reads included,
// requires the caller's session token.
type NoteService interface {
	Create(ctx context.Context, sessionToken, title, textContent string) (*domain.Note, error)
	Get(ctx context.Context, sessionToken string, id int64) (*domain.Note, error)
	List(ctx context.Context, sessionToken string) ([]domain.Note, error)
}

type noteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Create(ctx context.Context, sessionToken, title, textContent string) (*domain.Note, error) {
	note, err := s.notes.Create(ctx, sessionToken, title, textContent)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.NewError(domain.KindOperationFailed, "Failed to create note")
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, sessionToken string, id int64) (*domain.Note, error) {
	return s.notes.GetByID(ctx, sessionToken, id)
}

func (s *noteService) List(ctx context.Context, sessionToken string) ([]domain.Note, error) {
	return s.notes.List(ctx, sessionToken)
}
