package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PRV99/online-notes-app/pkg/shutdown"
)

func TestRunHooks(t *testing.T) {
	t.Run("Все хуки выполняются", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		var calls atomic.Int32
		hook := func(context.Context) error {
			calls.Add(1)
			return nil
		}

		shutdown.RunHooks(ctx, hook, hook, hook)

		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("Ошибка хука не прерывает остальные", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		var calls atomic.Int32

		shutdown.RunHooks(ctx,
			func(context.Context) error { return errors.New("hook failed") },
			func(context.Context) error { calls.Add(1); return nil },
		)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Зависший хук не блокирует дольше таймаута", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		shutdown.RunHooks(ctx, func(hookCtx context.Context) error {
			<-hookCtx.Done()
			time.Sleep(5 * time.Second)
			return hookCtx.Err()
		})

		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Без хуков возврат немедленный", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		start := time.Now()
		shutdown.RunHooks(ctx)

		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})
}
