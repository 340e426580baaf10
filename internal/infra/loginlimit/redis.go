// Package loginlimit throttles login attempts per username and client address.
package loginlimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts:"

// RedisLimiter ограничитель с фиксированным окном, общий для всех реплик сервиса
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

// NewRedisLimiter создает ограничитель: не более limit попыток за window
func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

// Allow учитывает попытку и сообщает, укладывается ли она в лимит
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("loginlimit: incr: %w", err)
	}

	// Первая попытка в окне задает время жизни счетчика
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("loginlimit: expire: %w", err)
		}
	}

	return count <= l.limit, nil
}
