package cache_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRV99/online-notes-app/internal/adapters/cache"
	"github.com/PRV99/online-notes-app/internal/config"
	ports "github.com/PRV99/online-notes-app/internal/ports/cache"
)

func setupCache(t *testing.T) (ports.Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	host, portStr, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		DB:             0,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		PoolSize:       10,
		MinIdle:        2,
		DefaultTTL:     5 * time.Minute,
	}

	c, err := cache.NewRedisCache(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, server
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная запись и чтение значения", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, "notes:user-1", `[{"_id":"note-1"}]`, time.Minute))

		value, err := c.Get(ctx, "notes:user-1")

		require.NoError(t, err)
		assert.Equal(t, `[{"_id":"note-1"}]`, value)
	})

	t.Run("Отсутствующий ключ не является ошибкой", func(t *testing.T) {
		c, _ := setupCache(t)

		value, err := c.Get(ctx, "missing-key")

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Нулевой TTL заменяется значением по умолчанию", func(t *testing.T) {
		c, server := setupCache(t)

		require.NoError(t, c.Set(ctx, "notes:user-1", "[]", 0))

		assert.Equal(t, 5*time.Minute, server.TTL("notes:user-1"))
	})

	t.Run("Значение исчезает после истечения TTL", func(t *testing.T) {
		c, server := setupCache(t)

		require.NoError(t, c.Set(ctx, "notes:user-1", "[]", time.Minute))

		server.FastForward(2 * time.Minute)

		value, err := c.Get(ctx, "notes:user-1")

		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное удаление значения", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, "notes:user-1", "[]", time.Minute))
		require.NoError(t, c.Delete(ctx, "notes:user-1"))

		value, err := c.Get(ctx, "notes:user-1")

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Удаление отсутствующего ключа не является ошибкой", func(t *testing.T) {
		c, _ := setupCache(t)

		assert.NoError(t, c.Delete(ctx, "missing-key"))
	})
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	t.Run("Недоступный сервер дает ошибку подключения", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		host, portStr, err := net.SplitHostPort(addr)
		require.NoError(t, err)
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		cfg := &config.RedisConfig{
			Host:           host,
			Port:           port,
			ConnectTimeout: time.Second,
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
		}

		c, err := cache.NewRedisCache(context.Background(), cfg)

		assert.Nil(t, c)
		assert.Error(t, err)
	})
}
