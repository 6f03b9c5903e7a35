package handlers

import (
	"regexp"

	"github.com/gofiber/fiber/v3"
)

// Сообщения полевых ошибок валидации.
const (
	msgEmailRequired    = "email is required"
	msgEmailInvalid     = "email must be a valid email address"
	msgPasswordRequired = "password is required"
	msgTitleRequired    = "title is required"
	msgURLRequired      = "url is required"
	msgValidationFailed = "validation failed"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// fieldErrors хранит полевые ошибки валидации запроса.
type fieldErrors map[string]string

// validateCredentials проверяет email и пароль до вызова бизнес-логики.
func validateCredentials(email, password string) fieldErrors {
	fields := fieldErrors{}

	switch {
	case email == "":
		fields["email"] = msgEmailRequired
	case !emailRegex.MatchString(email):
		fields["email"] = msgEmailInvalid
	}

	if password == "" {
		fields["password"] = msgPasswordRequired
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// validateNewNote проверяет обязательные поля создаваемой заметки.
func validateNewNote(title, url string) fieldErrors {
	fields := fieldErrors{}

	if title == "" {
		fields["title"] = msgTitleRequired
	}
	if url == "" {
		fields["url"] = msgURLRequired
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// respondValidationError отправляет 400 с полевой детализацией.
func respondValidationError(ctx fiber.Ctx, fields fieldErrors) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  msgValidationFailed,
		"fields": fields,
	})
}
