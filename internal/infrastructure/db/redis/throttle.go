package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const failureTTL = 15 * time.Minute

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_fail:<email>, expiring failureTTL after the last failure.
// The counters feed dashboards and alerting; they do not lock accounts out.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// RecordFailure increments the failure counter for email and refreshes its TTL.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	if err := t.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return t.client.Expire(ctx, key, failureTTL).Err()
}

// Reset clears the failure counter for email after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_fail:" + email
}
