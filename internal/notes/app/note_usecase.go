// Package app реализует бизнес-логику работы с заметками.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notehub/internal/notes/domain/entities"
	"notehub/internal/notes/ports/repositories"
	"notehub/pkg/logger"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Идентичность пользователя приходит из Auth Guard; каждый вызов ограничен
// заметками этого владельца.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID, title string, description *string, url string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "CreateNote"), zap.String("userID", userID))

	if title == "" {
		return nil, fmt.Errorf("validating title: %w", entities.ErrEmptyTitle)
	}
	if url == "" {
		return nil, fmt.Errorf("validating url: %w", entities.ErrEmptyURL)
	}

	note := entities.NewNote(userID, title, description, url)
	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("creating note: %w", err)
	}

	log.Info(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// GetNote возвращает заметку по ID в пределах заметок владельца.
func (uc *NoteUseCase) GetNote(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	if noteID == "" {
		return nil, fmt.Errorf("validating note ID: %w", entities.ErrEmptyNoteID)
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	return note, nil
}

// ListNotes возвращает все заметки пользователя.
func (uc *NoteUseCase) ListNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return notes, nil
}

// UpdateNote обновляет только переданные поля заметки. Несовпадение владельца
// неотличимо от отсутствия заметки.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, userID, noteID string, patch entities.NotePatch) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "UpdateNote"), zap.String("userID", userID))

	if noteID == "" {
		return nil, fmt.Errorf("validating note ID: %w", entities.ErrEmptyNoteID)
	}

	note, err := uc.noteRepo.Update(ctx, noteID, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	log.Info(ctx, "note updated", zap.String("noteID", noteID))
	return note, nil
}

// DeleteNote удаляет заметку и возвращает ID удаленной записи.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, userID, noteID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "DeleteNote"), zap.String("userID", userID))

	if noteID == "" {
		return "", fmt.Errorf("validating note ID: %w", entities.ErrEmptyNoteID)
	}

	deletedID, err := uc.noteRepo.Delete(ctx, noteID, userID)
	if err != nil {
		return "", fmt.Errorf("deleting note: %w", err)
	}

	log.Info(ctx, "note deleted", zap.String("noteID", deletedID))
	return deletedID, nil
}
