package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 토큰 수와 마지막 갱신 시각을 원자적으로 갱신
// 반환: {allowed, remaining, reset_unix}
var tokenBucketScript = redis.NewScript(`
	local tokens_key = KEYS[1] .. ":tokens"
	local timestamp_key = KEYS[1] .. ":timestamp"
	local limit = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	local tokens = tonumber(redis.call('GET', tokens_key))
	local last_update = tonumber(redis.call('GET', timestamp_key))

	if tokens == nil or last_update == nil then
		tokens = limit
		last_update = now
	end

	local refill_rate = limit / window
	local new_tokens = math.min(limit, tokens + ((now - last_update) * refill_rate))

	local allowed = 0
	if new_tokens >= 1 then
		new_tokens = new_tokens - 1
		allowed = 1
	end

	redis.call('SET', tokens_key, new_tokens, 'EX', window * 2)
	redis.call('SET', timestamp_key, now, 'EX', window * 2)

	local wait = 0
	if new_tokens < 1 then
		wait = math.ceil((1 - new_tokens) / refill_rate)
	end

	return {allowed, math.floor(new_tokens), now + wait}
`)

// RedisLimiter Redis 기반 분산 Limiter (여러 인스턴스가 같은 제한을 공유)
type RedisLimiter struct {
	client    redis.Cmdable
	keyPrefix string
	limit     int
	window    time.Duration
}

// NewRedisLimiter 기존 Redis 클라이언트로 Limiter 생성
func NewRedisLimiter(client redis.Cmdable, keyPrefix string, limit int, window time.Duration) *RedisLimiter {
	if keyPrefix == "" {
		keyPrefix = "ratelimit:"
	}
	if limit <= 0 {
		limit = 1
	}
	if window < time.Second {
		window = time.Minute
	}
	return &RedisLimiter{
		client:    client,
		keyPrefix: keyPrefix,
		limit:     limit,
		window:    window,
	}
}

// Allow 요청 허용 여부 확인
func (r *RedisLimiter) Allow(ctx context.Context, key string) (*Decision, error) {
	result, err := tokenBucketScript.Run(ctx, r.client,
		[]string{r.keyPrefix + key},
		r.limit, int(r.window.Seconds()), time.Now().Unix(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis script execution failed: %w", err)
	}
	if len(result) < 3 {
		return nil, fmt.Errorf("invalid script result: %v", result)
	}

	return &Decision{
		Allowed:   result[0] == 1,
		Limit:     r.limit,
		Remaining: int(result[1]),
		ResetAt:   time.Unix(result[2], 0),
	}, nil
}

// Reset 키의 제한 초기화
func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	redisKey := r.keyPrefix + key
	if err := r.client.Del(ctx, redisKey+":tokens", redisKey+":timestamp").Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}
