// Package services содержит реализации прикладных сервисов авторизации.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/PRV99/online-notes-app/internal/domain/services"
	svc "github.com/PRV99/online-notes-app/internal/ports/services"
	"github.com/PRV99/online-notes-app/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken   = "issuing session token"
	msgValidatingTok  = "validating session token"
	msgTokenIssued    = "token issued successfully"
	msgTokenValidated = "token validated successfully"
	msgInvalidToken   = "invalid token format"
	msgTokenExpired   = "token has expired"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken = "error parsing token"

	errCtxIssuingToken   = "issuing token"
	errCtxVerifyingToken = "verifying token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// TokenUser - вложенный объект claims с идентификатором владельца.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims определяет структуру данных токена сессии: единственное
// утверждение - владелец в виде {"user":{"id":...}}.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService поверх HS256.
type ServiceJWT struct {
	config services.TokenConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.TokenConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
	}
}

// Issue выпускает подписанный токен сессии с абсолютным сроком действия.
func (s *ServiceJWT) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken,
			services.ErrGeneratingToken, services.ErrEmptySigningSecret)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.TokenTTL)

	claims := Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Verify проверяет подпись и срок действия токена и возвращает ID владельца.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgValidatingTok)

	if tokenString == "" {
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrTokenMissing)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrTokenExpired)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxVerifyingToken, services.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrTokenInvalid)
	}

	if claims.User.ID == "" {
		log.Debug(ctx, "user id claim is empty")
		return "", fmt.Errorf("%s: %w: empty user id", errCtxVerifyingToken, services.ErrTokenInvalid)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.User.ID))
	return claims.User.ID, nil
}
