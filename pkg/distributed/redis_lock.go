package distributed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrLockNotHeld     = errors.New("lock not held")
)

// 자신이 잡은 락만 해제
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// 자신이 잡은 락만 TTL 연장
var extendScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`)

// Lock 획득된 분산 락
type Lock struct {
	client redis.Cmdable
	key    string
	owner  string
}

// LockManager Redis 분산 락 관리자, 인스턴스마다 고유한 owner 값을 쓴다
type LockManager struct {
	client redis.Cmdable
	owner  string
}

// NewLockManager LockManager 생성
func NewLockManager(client redis.Cmdable) *LockManager {
	return &LockManager{
		client: client,
		owner:  uuid.NewString(),
	}
}

// Owner 이 인스턴스의 락 소유자 값
func (m *LockManager) Owner() string {
	return m.owner
}

// Acquire 분산 락 획득 시도 (SET NX)
func (m *LockManager) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	ok, err := m.client.SetNX(ctx, key, m.owner, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLockNotAcquired
	}

	return &Lock{client: m.client, key: key, owner: m.owner}, nil
}

// AcquireWithRetry 재시도를 통한 락 획득
func (m *LockManager) AcquireWithRetry(
	ctx context.Context,
	key string,
	ttl time.Duration,
	maxRetries int,
	retryInterval time.Duration,
) (*Lock, error) {
	for i := 0; i < maxRetries; i++ {
		lock, err := m.Acquire(ctx, key, ttl)
		if err == nil {
			return lock, nil
		}
		if !errors.Is(err, ErrLockNotAcquired) {
			return nil, err
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryInterval):
			}
		}
	}

	return nil, ErrLockNotAcquired
}

// WithLock 락을 잡은 상태에서 fn 실행 후 해제
func (m *LockManager) WithLock(
	ctx context.Context,
	key string,
	ttl time.Duration,
	maxRetries int,
	retryInterval time.Duration,
	fn func(ctx context.Context) error,
) error {
	lock, err := m.AcquireWithRetry(ctx, key, ttl, maxRetries, retryInterval)
	if err != nil {
		return err
	}

	fnErr := fn(ctx)

	// fn 이 ctx 를 취소시켰더라도 해제는 시도
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := lock.Release(releaseCtx); err != nil && fnErr == nil {
		return err
	}

	return fnErr
}

// Release 락 해제
func (l *Lock) Release(ctx context.Context) error {
	result, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.owner).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Extend 락 TTL 연장
func (l *Lock) Extend(ctx context.Context, ttl time.Duration) error {
	result, err := extendScript.Run(ctx, l.client, []string{l.key}, l.owner, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to extend lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// IsHeld 락이 아직 이 소유자에게 있는지 확인
func (l *Lock) IsHeld(ctx context.Context) (bool, error) {
	value, err := l.client.Get(ctx, l.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == l.owner, nil
}
