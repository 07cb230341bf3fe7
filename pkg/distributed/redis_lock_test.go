package distributed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // 테스트용 DB
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available:", err)
	}

	// 테스트 전 DB 초기화
	client.FlushDB(ctx)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestLock_AcquireAndRelease(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()

	first := NewLockManager(client)
	second := NewLockManager(client)
	require.NotEqual(t, first.Owner(), second.Owner())

	lock, err := first.Acquire(ctx, "test:lock", 5*time.Second)
	require.NoError(t, err)

	_, err = second.Acquire(ctx, "test:lock", 5*time.Second)
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	require.NoError(t, lock.Release(ctx))

	// 해제 후 다른 인스턴스가 획득 가능
	lock2, err := second.Acquire(ctx, "test:lock", 5*time.Second)
	require.NoError(t, err)
	defer lock2.Release(ctx)

	// 이미 해제한 락은 다시 해제할 수 없다
	assert.ErrorIs(t, lock.Release(ctx), ErrLockNotHeld)
}

func TestLock_AutoExpire(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()
	manager := NewLockManager(client)

	lock, err := manager.Acquire(ctx, "test:expire", time.Second)
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	held, err := lock.IsHeld(ctx)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestLock_Extend(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()
	manager := NewLockManager(client)

	lock, err := manager.Acquire(ctx, "test:extend", time.Second)
	require.NoError(t, err)
	defer lock.Release(ctx)

	require.NoError(t, lock.Extend(ctx, 5*time.Second))
	time.Sleep(1500 * time.Millisecond)

	held, err := lock.IsHeld(ctx)
	require.NoError(t, err)
	assert.True(t, held)
}

func TestLockManager_AcquireWithRetry(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()

	holder := NewLockManager(client)
	waiter := NewLockManager(client)

	lock, err := holder.Acquire(ctx, "test:retry", 5*time.Second)
	require.NoError(t, err)

	go func() {
		time.Sleep(200 * time.Millisecond)
		lock.Release(context.Background())
	}()

	lock2, err := waiter.AcquireWithRetry(ctx, "test:retry", 5*time.Second, 10, 100*time.Millisecond)
	require.NoError(t, err)
	defer lock2.Release(ctx)

	held, err := lock2.IsHeld(ctx)
	require.NoError(t, err)
	assert.True(t, held)
}

func TestLockManager_WithLock(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager := NewLockManager(client)
			err := manager.WithLock(ctx, "test:with-lock", 5*time.Second, 50, 50*time.Millisecond,
				func(context.Context) error {
					n := atomic.AddInt32(&running, 1)
					for {
						m := atomic.LoadInt32(&maxRunning)
						if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
							break
						}
					}
					time.Sleep(50 * time.Millisecond)
					atomic.AddInt32(&running, -1)
					return nil
				})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning)
}

func TestLockManager_WithLockReturnsFnError(t *testing.T) {
	client := setupRedisClient(t)
	ctx := context.Background()
	manager := NewLockManager(client)

	boom := errors.New("boom")
	err := manager.WithLock(ctx, "test:fn-error", 5*time.Second, 1, 0,
		func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	// fn 이 실패해도 락은 해제된다
	lock, err := manager.Acquire(ctx, "test:fn-error", time.Second)
	require.NoError(t, err)
	lock.Release(ctx)
}
