package repositories

import (
	"context"

	"github.com/PRV99/online-notes-app/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// FindByID намеренно не ограничен владельцем: проверка существования
// выполняется до проверки владения.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	FindByID(ctx context.Context, noteID string) (*entities.Note, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) error
}
