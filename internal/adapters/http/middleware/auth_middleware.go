// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/ports/services"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoToken      = "Access Denied: No Token Provided"
	ErrorInvalidToken = "Access Denied: Invalid Token"

	// UserContextKey - ключ Locals с контекстом аутентифицированного запроса.
	UserContextKey = "userContext"

	bearerPrefix = "Bearer "
)

// userIDKeyType - тип ключа контекста для идентификатора пользователя.
type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// WithUserID кладет идентификатор аутентифицированного пользователя в контекст.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID извлекает идентификатор аутентифицированного пользователя из контекста.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// NewAuthMiddleware создает промежуточное ПО проверки токена сессии.
// Запрос без валидного токена отклоняется до вызова обработчика;
// истекший и поддельный токены для клиента неразличимы.
func NewAuthMiddleware(tokenSvc services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, "no bearer token provided")
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoToken,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		userID, err := tokenSvc.Verify(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, "token verification failed", zap.Error(err))
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		ctx.Locals(UserContextKey, WithUserID(requestCtx, userID))

		return ctx.Next()
	}
}
