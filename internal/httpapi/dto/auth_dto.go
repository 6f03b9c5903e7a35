// Package dto содержит объекты передачи данных HTTP слоя.
// Имена JSON-полей следуют внешнему контракту API (camelCase).
package dto

import (
	"time"

	"notehub/internal/auth/domain/entities"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse содержит публичные данные созданного пользователя.
// Хэш пароля наружу не отдается.
type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse содержит выданный access токен.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserProfileResponse содержит данные профиля пользователя.
type UserProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRegisterResponse преобразует доменную сущность в ответ регистрации.
func NewRegisterResponse(user *entities.User) *RegisterResponse {
	return &RegisterResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserProfileResponse преобразует доменную сущность в ответ профиля.
func NewUserProfileResponse(user *entities.User) *UserProfileResponse {
	return &UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}
