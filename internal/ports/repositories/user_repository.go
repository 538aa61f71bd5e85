// Package repositories определяет интерфейсы хранилищ сервиса заметок.
package repositories

import (
	"context"

	"github.com/PRV99/online-notes-app/internal/domain/entities"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей.
// Пользователи создаются при регистрации и далее не изменяются.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
