package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"notehub/internal/httpapi/dto"
	"notehub/internal/httpapi/middleware"
	"notehub/internal/notes/app"
	"notehub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListNotes  = "note handler: list notes"
	LogHandlerGetNote    = "note handler: get note"
	LogHandlerCreateNote = "note handler: create note"
	LogHandlerUpdateNote = "note handler: update note"
	LogHandlerDeleteNote = "note handler: delete note"

	ErrorInvalidNoteID = "invalid note id"
)

// NoteHandler содержит HTTP обработчики заметок.
type NoteHandler struct {
	noteUseCase *app.NoteUseCase
}

// NewNoteHandler создает новый экземпляр обработчика заметок.
func NewNoteHandler(noteUseCase *app.NoteUseCase) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
	}
}

// currentUserID извлекает ID аутентифицированного пользователя из locals.
func currentUserID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	return userID, ok && userID != ""
}

// noteIDParam разбирает и проверяет path-параметр заметки.
func noteIDParam(ctx fiber.Ctx) (string, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ListNotes возвращает все заметки текущего пользователя.
func (h *NoteHandler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListNotes)

	userID, ok := currentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.NewNoteListResponse(notes))
}

// GetNote возвращает заметку по ID в пределах заметок текущего пользователя.
func (h *NoteHandler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetNote)

	userID, ok := currentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	noteID, err := noteIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidNoteID,
		})
	}

	note, err := h.noteUseCase.GetNote(requestCtx, userID, noteID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.NewNoteResponse(note))
}

// CreateNote создает новую заметку текущего пользователя.
func (h *NoteHandler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateNote)

	userID, ok := currentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if fields := validateNewNote(req.Title, req.URL); fields != nil {
		return respondValidationError(ctx, fields)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, userID, req.Title, req.Description, req.URL)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.NewNoteResponse(note))
}

// UpdateNote обновляет переданные поля заметки текущего пользователя.
func (h *NoteHandler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateNote)

	userID, ok := currentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	noteID, err := noteIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidNoteID,
		})
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, userID, noteID, req.Patch())
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.NewNoteResponse(note))
}

// DeleteNote удаляет заметку текущего пользователя и возвращает ее ID.
func (h *NoteHandler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteNote)

	userID, ok := currentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	noteID, err := noteIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidNoteID,
		})
	}

	deletedID, err := h.noteUseCase.DeleteNote(requestCtx, userID, noteID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.DeleteNoteResponse{ID: deletedID})
}
