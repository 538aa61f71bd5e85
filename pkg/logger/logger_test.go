package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRV99/online-notes-app/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("Создание логгера для development окружения", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("Создание логгера для production окружения", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("Некорректный уровень логирования дает ошибку", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "not-a-level")

		assert.Nil(t, log)
		assert.Error(t, err)
	})
}

func TestContext(t *testing.T) {
	t.Run("Логгер извлекается из контекста", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, got)
	})

	t.Run("Отсутствие логгера в контексте дает ошибку", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("Log не возвращает nil без логгера в контексте", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("Log предпочитает логгер из контекста", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), log)

		assert.Same(t, log, logger.Log(ctx))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Идентификатор запроса сохраняется в контексте", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("Пустой идентификатор заменяется сгенерированным", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, id)

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("Контекст без идентификатора запроса", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())

		assert.False(t, ok)
		assert.Empty(t, id)
	})
}
