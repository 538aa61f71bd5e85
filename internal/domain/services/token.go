// Package services содержит доменные типы и ошибки для сервисов авторизации.
package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами сессии.
var (
	ErrTokenMissing       = errors.New("no token provided")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrGeneratingToken    = errors.New("failed to generate token")
	ErrEmptySigningSecret = errors.New("empty signing secret")
)

// TokenConfig содержит настройки выпуска токенов сессии.
// Секрет подписи известен только серверному процессу.
type TokenConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// TokenClaims определяет единственное утверждение токена сессии -
// идентификатор владельца.
type TokenClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
