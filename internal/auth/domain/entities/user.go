// Package entities определяет доменные сущности пользователя.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email is already taken")
)

// User представляет основную сущность домена пользователя.
// PasswordHash никогда не сериализуется наружу.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
