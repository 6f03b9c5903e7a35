package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/auth/ports/api"
	"notehub/internal/httpapi/dto"
	"notehub/internal/httpapi/middleware"
	"notehub/pkg/logger"
)

// LogHandlerGetProfile - сообщение лога обработчика профиля.
const LogHandlerGetProfile = "user handler: get profile"

// ErrorUnauthorized возвращается, когда guard не положил ID пользователя.
const ErrorUnauthorized = "unauthorized"

// UserHandler содержит HTTP обработчики пользовательских операций.
type UserHandler struct {
	userUseCase api.UserUseCase
}

// NewUserHandler создает новый экземпляр обработчика пользователя.
func NewUserHandler(userUseCase api.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetProfile обрабатывает запрос на получение профиля текущего пользователя.
func (h *UserHandler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	user, err := h.userUseCase.GetUserProfile(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.NewUserProfileResponse(user))
}
