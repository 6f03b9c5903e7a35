package dto

import (
	"notehub/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	URL         string  `json:"url" validate:"required"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки:
// nil-поля остаются без изменений.
type UpdateNoteRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// NoteResponse содержит проекцию заметки для ответа.
type NoteResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

// DeleteNoteResponse содержит ID удаленной заметки.
type DeleteNoteResponse struct {
	ID string `json:"id"`
}

// NewNoteResponse преобразует доменную сущность в проекцию ответа.
func NewNoteResponse(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		URL:         note.URL,
	}
}

// NewNoteListResponse преобразует список заметок в проекции ответа.
func NewNoteListResponse(notes []*entities.Note) []*NoteResponse {
	responses := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, NewNoteResponse(note))
	}
	return responses
}

// Patch преобразует запрос обновления в доменный NotePatch.
func (r *UpdateNoteRequest) Patch() entities.NotePatch {
	return entities.NotePatch{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
	}
}
