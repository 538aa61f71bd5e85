package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRV99/online-notes-app/internal/adapters/services"
	domain "github.com/PRV99/online-notes-app/internal/domain/services"
)

const testSecret = "test-secret-key-for-jwt-service"

func TestServiceJWT_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret, 30*time.Minute)

	t.Run("Выпущенный токен возвращает исходный ID пользователя", func(t *testing.T) {
		token, expiresAt, err := svc.Issue(ctx, "user-42")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

		userID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", userID)
	})

	t.Run("Claims содержат владельца в виде user.id", func(t *testing.T) {
		token, _, err := svc.Issue(ctx, "user-42")
		require.NoError(t, err)

		parsed, err := jwt.ParseWithClaims(token, &services.Claims{}, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)

		claims, ok := parsed.Claims.(*services.Claims)
		require.True(t, ok)
		assert.Equal(t, "user-42", claims.User.ID)
		assert.Equal(t, "user-42", claims.Subject)
		require.NotNil(t, claims.ExpiresAt)
	})

	t.Run("Пустой токен дает ErrTokenMissing", func(t *testing.T) {
		_, err := svc.Verify(ctx, "")
		assert.ErrorIs(t, err, domain.ErrTokenMissing)
	})

	t.Run("Мусорная строка дает ErrTokenInvalid", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("Токен с чужой подписью отклоняется", func(t *testing.T) {
		other := services.NewJWT("another-secret-entirely", 30*time.Minute)
		token, _, err := other.Issue(ctx, "user-42")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("Истекший токен дает ErrTokenExpired даже с верной подписью", func(t *testing.T) {
		expired := services.NewJWT(testSecret, -time.Minute)
		token, _, err := expired.Issue(ctx, "user-42")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("Токен без ID пользователя невалиден", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("Неверный алгоритм подписи отклоняется", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, services.Claims{
			User: services.TokenUser{ID: "user-42"},
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("Пустой секрет не позволяет выпустить токен", func(t *testing.T) {
		empty := services.NewJWT("", 30*time.Minute)
		_, _, err := empty.Issue(ctx, "user-42")
		assert.ErrorIs(t, err, domain.ErrGeneratingToken)
	})
}
