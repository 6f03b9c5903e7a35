package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с access токенами.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, email string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
