package noteusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"notehub/internal/notes/domain/entities"
)

const (
	ErrCreateNote = "failed to create note"
	ErrGetNote    = "failed to get note"
	ErrListNotes  = "failed to list notes"
	ErrUpdateNote = "failed to update note"
	ErrDeleteNote = "failed to delete note"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrGetNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		return nil, nil
	}
	return args.Get(0).([]*entities.Note), nil
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, userID string, patch entities.NotePatch) (*entities.Note, error) {
	args := m.Called(ctx, noteID, userID, patch)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) (string, error) {
	args := m.Called(ctx, noteID, userID)
	if err := args.Error(1); err != nil {
		return "", fmt.Errorf("%s: %w", ErrDeleteNote, err)
	}
	return args.String(0), nil
}
