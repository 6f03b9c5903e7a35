// Package entities определяет доменные сущности заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyNoteID  = errors.New("note ID cannot be empty")
	ErrEmptyTitle   = errors.New("note title cannot be empty")
	ErrEmptyURL     = errors.New("note url cannot be empty")
)

// Note представляет собой заметку пользователя. Description опциональна
// и хранится как NULL при отсутствии.
type Note struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotePatch описывает частичное обновление заметки: nil-поля не изменяются.
type NotePatch struct {
	Title       *string
	Description *string
	URL         *string
}

// NewNote создает новую заметку для указанного пользователя.
func NewNote(userID, title string, description *string, url string) *Note {
	return &Note{
		UserID:      userID,
		Title:       title,
		Description: description,
		URL:         url,
	}
}
