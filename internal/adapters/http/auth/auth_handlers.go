// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/adapters/http/dto"
	"github.com/PRV99/online-notes-app/internal/app"
	"github.com/PRV99/online-notes-app/internal/domain/entities"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest = "invalid request"

	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgServerError        = "Server Error"
)

// Handler содержит HTTP обработчики авторизации.
type Handler struct {
	authUseCase *app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase *app.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// sendMessage отправляет ответ с единственным сообщением.
func sendMessage(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// sendValidationErrors отправляет 400 с ошибками по полям.
func sendValidationErrors(ctx fiber.Ctx, fieldErrors []dto.FieldError) error {
	if err := ctx.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrors}); err != nil {
		return fmt.Errorf("error sending validation response: %w", err)
	}
	return nil
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if fieldErrors := validateRegister(&req); len(fieldErrors) > 0 {
		return sendValidationErrors(ctx, fieldErrors)
	}

	session, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password)
	if err != nil {
		return h.handleAuthError(ctx, err)
	}

	response := dto.AuthResponse{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Token: session.Token,
	}

	if err := ctx.Status(http.StatusCreated).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if fieldErrors := validateLogin(&req); len(fieldErrors) > 0 {
		return sendValidationErrors(ctx, fieldErrors)
	}

	session, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return h.handleAuthError(ctx, err)
	}

	response := dto.AuthResponse{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Token: session.Token,
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// handleAuthError отображает ошибки бизнес-логики в HTTP статусы.
// Ошибки авторизации отдаются без деталей, остальное сворачивается в 500.
func (h *Handler) handleAuthError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	switch {
	case errors.Is(err, entities.ErrEmailTaken):
		return sendMessage(ctx, http.StatusBadRequest, MsgUserExists)
	case errors.Is(err, entities.ErrEmptyName):
		return sendValidationErrors(ctx, []dto.FieldError{{Field: "name", Message: "Name is required"}})
	case errors.Is(err, entities.ErrInvalidEmail):
		return sendValidationErrors(ctx, []dto.FieldError{{Field: "email", Message: "Please include a valid email"}})
	case errors.Is(err, entities.ErrPasswordTooShort):
		return sendValidationErrors(ctx, []dto.FieldError{{Field: "password", Message: "Password must be at least 5 characters"}})
	case errors.Is(err, entities.ErrInvalidCredentials):
		return sendMessage(ctx, http.StatusUnauthorized, MsgInvalidCredentials)
	default:
		log.Error(requestCtx, "auth request failed", zap.Error(err))
		return sendMessage(ctx, http.StatusInternalServerError, MsgServerError)
	}
}

// validateRegister проверяет форму запроса регистрации.
func validateRegister(req *dto.RegisterRequest) []dto.FieldError {
	var fieldErrors []dto.FieldError
	if req.Name == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "name", Message: "Name is required"})
	}
	if req.Email == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if len(req.Password) < entities.MinPasswordLength {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "password", Message: "Password must be at least 5 characters"})
	}
	return fieldErrors
}

// validateLogin проверяет форму запроса входа.
func validateLogin(req *dto.LoginRequest) []dto.FieldError {
	var fieldErrors []dto.FieldError
	if req.Email == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if req.Password == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "password", Message: "Password is required"})
	}
	return fieldErrors
}
