// Package http содержит компоненты HTTP сервера.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/PRV99/online-notes-app/internal/adapters/http/auth"
	"github.com/PRV99/online-notes-app/internal/adapters/http/middleware"
	"github.com/PRV99/online-notes-app/internal/adapters/http/notes"
	"github.com/PRV99/online-notes-app/internal/app"
	"github.com/PRV99/online-notes-app/internal/ports/services"
)

// Pinger проверяет доступность хранилища для health-эндпоинта.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(
	fiberApp *fiber.App,
	authUseCase *app.AuthUseCase,
	noteUseCase *app.NoteUseCase,
	tokenSvc services.TokenService,
	db Pinger,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	fiberApp.Get("/health", func(c fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := fiberApp.Group("/api")

	// Маршруты пользователей (публичные).
	userRoutes := api.Group("/users")
	userRoutes.Post("/register", authHandler.Register)
	userRoutes.Post("/login", authHandler.Login)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := api.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:id", notesHandler.GetNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
