// Package repositories определяет порты хранилища пользователей.
package repositories

import (
	"context"

	"notehub/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
