// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/adapters/http/dto"
	"github.com/PRV99/online-notes-app/internal/adapters/http/middleware"
	"github.com/PRV99/online-notes-app/internal/app"
	"github.com/PRV99/online-notes-app/internal/domain/entities"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidRequestBody = "invalid request body"

	MsgNoteNotFound  = "Note not found"
	MsgNotAuthorized = "Not authorized"
	MsgNoteDeleted   = "Note deleted successfully"
	MsgServerError   = "Server Error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// userContext возвращает контекст запроса с идентификатором пользователя,
// положенный промежуточным ПО авторизации.
func userContext(ctx fiber.Ctx) (context.Context, string, bool) {
	userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context)
	if !ok {
		return ctx.Context(), "", false
	}
	userID, ok := middleware.UserID(userCtx)
	return userCtx, userID, ok
}

// sendUnauthorized отправляет 401 без деталей.
func sendUnauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": middleware.ErrorNoToken,
	}); err != nil {
		return fmt.Errorf("error sending unauthorized response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx, userID, ok := userContext(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	note, err := h.noteUseCase.Create(userCtx, userID, req.Title, req.Content, req.Tag)
	if err != nil {
		log.Debug(userCtx, "failed to create note", zap.Error(err))
		return handleNoteError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx, userID, ok := userContext(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(userCtx, LogHandlerGetNote)

	noteID := ctx.Params("id")

	note, err := h.noteUseCase.Get(userCtx, userID, noteID)
	if err != nil {
		log.Debug(userCtx, "failed to get note", zap.Error(err))
		return handleNoteError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx, userID, ok := userContext(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes, err := h.noteUseCase.List(userCtx, userID)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return handleNoteError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NotesFromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx, userID, ok := userContext(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(userCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("id")

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	note, err := h.noteUseCase.Update(userCtx, userID, noteID, req.Title, req.Content, req.Tag)
	if err != nil {
		log.Debug(userCtx, "failed to update note", zap.Error(err))
		return handleNoteError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx, userID, ok := userContext(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("id")

	if err := h.noteUseCase.Delete(userCtx, userID, noteID); err != nil {
		log.Debug(userCtx, "failed to delete note", zap.Error(err))
		return handleNoteError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Message: MsgNoteDeleted}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleNoteError отображает ошибки бизнес-логики в HTTP статусы.
// Существование проверяется до владения: чужой ID дает 401 только если
// заметка существует, иначе 404.
func handleNoteError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	switch {
	case errors.Is(err, entities.ErrNoteNotFound):
		if err := ctx.Status(http.StatusNotFound).JSON(dto.MessageResponse{Message: MsgNoteNotFound}); err != nil {
			return fmt.Errorf("error sending not found response: %w", err)
		}
		return nil
	case errors.Is(err, entities.ErrNotOwner):
		if err := ctx.Status(http.StatusUnauthorized).JSON(dto.MessageResponse{Message: MsgNotAuthorized}); err != nil {
			return fmt.Errorf("error sending forbidden response: %w", err)
		}
		return nil
	case errors.Is(err, entities.ErrTitleTooShort):
		return sendFieldError(ctx, "title", "Title must be at least 3 characters")
	case errors.Is(err, entities.ErrContentTooShort):
		return sendFieldError(ctx, "content", "Content must be at least 5 characters")
	default:
		log.Error(requestCtx, "note request failed", zap.Error(err))
		if err := ctx.Status(http.StatusInternalServerError).JSON(dto.MessageResponse{Message: MsgServerError}); err != nil {
			return fmt.Errorf("error sending 500 response: %w", err)
		}
		return nil
	}
}

// sendFieldError отправляет 400 с ошибкой валидации одного поля.
func sendFieldError(ctx fiber.Ctx, field, message string) error {
	if err := ctx.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Errors: []dto.FieldError{{Field: field, Message: message}},
	}); err != nil {
		return fmt.Errorf("error sending validation response: %w", err)
	}
	return nil
}
