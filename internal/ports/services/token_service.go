// Package services определяет интерфейсы прикладных сервисов.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс выпуска и проверки токенов сессии.
type TokenService interface {
	Issue(ctx context.Context, userID string) (string, time.Time, error)
	Verify(ctx context.Context, token string) (string, error)
}
