package app

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/domain/entities"
	"github.com/PRV99/online-notes-app/internal/ports/cache"
	"github.com/PRV99/online-notes-app/internal/ports/repositories"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

const (
	msgNoteCreated     = "note created"
	msgNoteUpdated     = "note updated"
	msgNoteDeleted     = "note deleted"
	msgNotesFromCache  = "notes list served from cache"
	msgOwnershipDenied = "note owned by another user"

	msgErrCacheRead       = "failed to read notes list from cache"
	msgErrCacheWrite      = "failed to write notes list to cache"
	msgErrCacheInvalidate = "failed to invalidate notes list cache"
)

// NoteUseCase реализует операции над заметками с проверкой владения.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, listCache cache.Cache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		cache:    listCache,
	}
}

// notesCacheKey - ключ кэша списка заметок пользователя.
func notesCacheKey(userID string) string {
	return "notes:" + userID
}

// Create создает заметку. Владельцем всегда становится аутентифицированный
// пользователь, независимо от содержимого запроса.
func (uc *NoteUseCase) Create(ctx context.Context, userID, title, content, tag string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Create"), zap.String("userID", userID))

	if len(title) < entities.MinTitleLength {
		return nil, fmt.Errorf("validating title: %w", entities.ErrTitleTooShort)
	}
	if len(content) < entities.MinContentLength {
		return nil, fmt.Errorf("validating content: %w", entities.ErrContentTooShort)
	}

	created, err := uc.noteRepo.Create(ctx, entities.NewNote(userID, title, content, tag))
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	uc.invalidateList(ctx, userID)

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// Get возвращает заметку по ID. Сначала проверяется существование,
// затем владение: несуществующий ID дает NotFound для любого пользователя.
func (uc *NoteUseCase) Get(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Get"), zap.String("userID", userID))

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	if !note.IsOwnedBy(userID) {
		log.Debug(ctx, msgOwnershipDenied, zap.String("noteID", noteID))
		return nil, fmt.Errorf("checking ownership: %w", entities.ErrNotOwner)
	}

	return note, nil
}

// List возвращает все заметки пользователя. Выборка всегда ограничена
// владельцем; результат кэшируется, кэш не является источником истины.
func (uc *NoteUseCase) List(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.List"), zap.String("userID", userID))

	if cached, err := uc.cache.Get(ctx, notesCacheKey(userID)); err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
	} else if cached != "" {
		var notes []*entities.Note
		if err := json.Unmarshal([]byte(cached), &notes); err == nil {
			log.Debug(ctx, msgNotesFromCache, zap.Int("count", len(notes)))
			return notes, nil
		}
	}

	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	if encoded, err := json.Marshal(notes); err == nil {
		if err := uc.cache.Set(ctx, notesCacheKey(userID), string(encoded), 0); err != nil {
			log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		}
	}

	return notes, nil
}

// Update обновляет заметку после проверки существования и владения.
// Пустые значения полей считаются "не переданы" и не затирают текущие:
// очистить поле до пустой строки через обновление нельзя.
func (uc *NoteUseCase) Update(ctx context.Context, userID, noteID, title, content, tag string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Update"), zap.String("userID", userID))

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	if !note.IsOwnedBy(userID) {
		log.Debug(ctx, msgOwnershipDenied, zap.String("noteID", noteID))
		return nil, fmt.Errorf("checking ownership: %w", entities.ErrNotOwner)
	}

	if title != "" {
		note.Title = title
	}
	if content != "" {
		note.Content = content
	}
	if tag != "" {
		note.Tag = tag
	}

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	uc.invalidateList(ctx, userID)

	log.Info(ctx, msgNoteUpdated, zap.String("noteID", updated.ID))
	return updated, nil
}

// Delete удаляет заметку после проверки существования и владения.
func (uc *NoteUseCase) Delete(ctx context.Context, userID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Delete"), zap.String("userID", userID))

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return fmt.Errorf("getting note: %w", err)
	}

	if !note.IsOwnedBy(userID) {
		log.Debug(ctx, msgOwnershipDenied, zap.String("noteID", noteID))
		return fmt.Errorf("checking ownership: %w", entities.ErrNotOwner)
	}

	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	uc.invalidateList(ctx, userID)

	log.Info(ctx, msgNoteDeleted, zap.String("noteID", noteID))
	return nil
}

// invalidateList сбрасывает кэш списка заметок пользователя.
// Ошибка кэша не прерывает операцию.
func (uc *NoteUseCase) invalidateList(ctx context.Context, userID string) {
	if err := uc.cache.Delete(ctx, notesCacheKey(userID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheInvalidate, zap.Error(err), zap.String("userID", userID))
	}
}
