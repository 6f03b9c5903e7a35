// Package repositories определяет порты хранилища заметок.
package repositories

import (
	"context"

	"notehub/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Все операции чтения и изменения фильтруются одновременно по ID заметки
// и ID владельца.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)
	Update(ctx context.Context, noteID, userID string, patch entities.NotePatch) (*entities.Note, error)
	Delete(ctx context.Context, noteID, userID string) (string, error)
}
