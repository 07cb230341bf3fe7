package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision 한 번의 요청에 대한 판정 결과
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter 키(IP 등)별 요청 제한
type Limiter interface {
	Allow(ctx context.Context, key string) (*Decision, error)
}

// bucket token bucket, window 동안 limit 개가 선형으로 채워진다
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// MemoryLimiter 프로세스 내 token bucket 기반 Limiter
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration

	cleanupInterval time.Duration
	lastCleanup     time.Time

	now func() time.Time
}

// NewMemoryLimiter window 당 limit 회까지 허용하는 Limiter 생성
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		buckets:         make(map[string]*bucket),
		limit:           limit,
		window:          window,
		cleanupInterval: 10 * time.Minute,
		lastCleanup:     time.Now(),
		now:             time.Now,
	}
}

// Allow 토큰 하나를 소비할 수 있으면 허용
func (m *MemoryLimiter) Allow(_ context.Context, key string) (*Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.maybeCleanup(now)

	b, exists := m.buckets[key]
	if !exists {
		b = &bucket{tokens: float64(m.limit), lastRefill: now}
		m.buckets[key] = b
	}
	m.refill(b, now)

	allowed := false
	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	// 토큰 하나가 다시 채워지는 시점
	perToken := m.window / time.Duration(m.limit)
	missing := 1 - b.tokens
	if missing < 0 {
		missing = 0
	}

	return &Decision{
		Allowed:   allowed,
		Limit:     m.limit,
		Remaining: int(b.tokens),
		ResetAt:   now.Add(time.Duration(missing * float64(perToken))),
	}, nil
}

func (m *MemoryLimiter) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 {
		return
	}
	rate := float64(m.limit) / m.window.Seconds()
	b.tokens += elapsed.Seconds() * rate
	if b.tokens > float64(m.limit) {
		b.tokens = float64(m.limit)
	}
	b.lastRefill = now
}

// maybeCleanup 오래 쓰이지 않아 가득 찬 bucket 제거 (mu 보유 상태에서 호출)
func (m *MemoryLimiter) maybeCleanup(now time.Time) {
	if now.Sub(m.lastCleanup) < m.cleanupInterval {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.lastRefill) >= m.window {
			delete(m.buckets, key)
		}
	}
	m.lastCleanup = now
}

// Reset 키의 제한 초기화
func (m *MemoryLimiter) Reset(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.buckets, key)
}

// Size 추적 중인 키 수
func (m *MemoryLimiter) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}
