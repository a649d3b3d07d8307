package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const loginAttemptKeyPrefix = "login_attempts:"

// LoginThrottle counts failed login attempts per username in Redis within a
// sliding expiry window. Every operation is best-effort: when Redis is
// unreachable the throttle allows the attempt rather than blocking logins.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	logger      *zap.Logger
}

// NewLoginThrottle builds a throttle over the shared Redis client.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window, logger: logger}
}

// Allow reports whether another login attempt is permitted for the username.
func (t *LoginThrottle) Allow(ctx context.Context, username string) bool {
	if t == nil || t.client == nil || t.maxAttempts <= 0 {
		return true
	}
	count, err := t.client.Get(ctx, loginAttemptKeyPrefix+username).Int()
	if err != nil {
		if err != redis.Nil {
			t.logger.Warn("login throttle lookup failed", zap.Error(err))
		}
		return true
	}
	return count < t.maxAttempts
}

// RecordFailure increments the failed-attempt counter, starting the expiry
// window on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) {
	if t == nil || t.client == nil {
		return
	}
	key := loginAttemptKeyPrefix + username
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Warn("login throttle increment failed", zap.Error(err))
		return
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			t.logger.Warn("login throttle expire failed", zap.Error(err))
		}
	}
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) {
	if t == nil || t.client == nil {
		return
	}
	if err := t.client.Del(ctx, loginAttemptKeyPrefix+username).Err(); err != nil {
		t.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}
