// Package services содержит доменные типы и ошибки аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации. ErrInvalidCredentials возвращается как для
// несуществующего email, так и для неверного пароля - ответ не должен
// позволять перечислять пользователей.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)

// AccessToken представляет выданный access токен.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}
