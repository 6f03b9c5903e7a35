// Package api определяет входные порты сервиса аутентификации.
package api

import (
	"context"

	"notehub/internal/auth/domain/entities"
	"notehub/internal/auth/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*services.AccessToken, error)
}
