// Package handlers содержит HTTP обработчики сервиса заметок.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	authentities "notehub/internal/auth/domain/entities"
	authservices "notehub/internal/auth/domain/services"
	notesentities "notehub/internal/notes/domain/entities"
)

// Сообщение для непредвиденных ошибок: сырые ошибки хранилища наружу
// не отдаются.
const msgInternalError = "internal server error"

// errorStatus транслирует доменные ошибки в HTTP статусы.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, authservices.ErrEmailAlreadyExists),
		errors.Is(err, authservices.ErrInvalidCredentials):
		return fiber.StatusForbidden
	case errors.Is(err, authentities.ErrInvalidEmail),
		errors.Is(err, authentities.ErrEmptyPassword),
		errors.Is(err, notesentities.ErrEmptyTitle),
		errors.Is(err, notesentities.ErrEmptyURL),
		errors.Is(err, notesentities.ErrEmptyNoteID):
		return fiber.StatusBadRequest
	case errors.Is(err, authentities.ErrUserNotFound),
		errors.Is(err, notesentities.ErrNoteNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError отправляет единый JSON-конверт ошибки. Текст берется из
// доменной ошибки, кроме 500 - там отдается обезличенное сообщение.
func respondError(ctx fiber.Ctx, err error) error {
	status := errorStatus(err)

	message := msgInternalError
	if status != fiber.StatusInternalServerError {
		message = unwrapSentinel(err).Error()
	}

	return ctx.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// unwrapSentinel достает самую вложенную ошибку цепочки, чтобы клиент
// получал текст доменной ошибки без внутренних контекстных префиксов.
func unwrapSentinel(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
