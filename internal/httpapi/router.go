// Package httpapi содержит HTTP сервер и маршрутизацию сервиса заметок.
package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"notehub/internal/auth/ports/api"
	svc "notehub/internal/auth/ports/services"
	"notehub/internal/httpapi/handlers"
	"notehub/internal/httpapi/middleware"
	notesapp "notehub/internal/notes/app"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	noteUseCase *notesapp.NoteUseCase,
	tokenSvc svc.TokenService,
) {
	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	noteHandler := handlers.NewNoteHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	guard := middleware.NewAuthMiddleware(tokenSvc)

	userRoutes := app.Group("/users")
	userRoutes.Use(guard)
	userRoutes.Get("/me", userHandler.GetProfile)

	noteRoutes := app.Group("/notes")
	noteRoutes.Use(guard)
	noteRoutes.Get("/", noteHandler.ListNotes)
	noteRoutes.Post("/", noteHandler.CreateNote)
	noteRoutes.Get("/:id", noteHandler.GetNote)
	noteRoutes.Patch("/:id", noteHandler.UpdateNote)
	noteRoutes.Delete("/:id", noteHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
