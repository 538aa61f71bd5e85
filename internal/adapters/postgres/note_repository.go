package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/domain/entities"
	"github.com/PRV99/online-notes-app/internal/ports/repositories"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	query := `
        INSERT INTO notes (user_id, title, content, tag)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, title, content, tag, created_at, updated_at
    `

	var created entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.UserID, note.Title, note.Content, note.Tag,
	).Scan(
		&created.ID, &created.UserID, &created.Title, &created.Content,
		&created.Tag, &created.CreatedAt, &created.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// FindByID получает заметку по ID без фильтра по владельцу: проверка
// существования должна происходить до проверки владения.
func (r *NoteRepository) FindByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID))

	query := `
        SELECT id, user_id, title, content, tag, created_at, updated_at
        FROM notes
        WHERE id = $1
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content,
		&note.Tag, &note.CreatedAt, &note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByUserID получает все заметки пользователя. Запрос всегда ограничен
// владельцем, поэтому чужие заметки в выборку не попадают.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByUserID"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	query := `
        SELECT id, user_id, title, content, tag, created_at, updated_at
        FROM notes
        WHERE user_id = $1
        ORDER BY updated_at DESC
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID, &note.UserID, &note.Title, &note.Content,
			&note.Tag, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет поля существующей заметки. Владелец не изменяется.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	query := `
        UPDATE notes
        SET title = $2, content = $3, tag = $4, updated_at = $5
        WHERE id = $1
        RETURNING id, user_id, title, content, tag, created_at, updated_at
    `

	var updated entities.Note
	err := r.pool.QueryRow(ctx, query,
		note.ID, note.Title, note.Content, note.Tag, time.Now().UTC(),
	).Scan(
		&updated.ID, &updated.UserID, &updated.Title, &updated.Content,
		&updated.Tag, &updated.CreatedAt, &updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.String("noteID", note.ID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, noteID)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}
