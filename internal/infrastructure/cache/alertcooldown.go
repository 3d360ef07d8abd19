package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// cooldownKeyPrefix is the prefix for all alert cooldown keys
	cooldownKeyPrefix = "covena_alert_cooldown:"
	// DefaultCooldownMinutes is the default suppression window in minutes
	DefaultCooldownMinutes = 30
)

// AlertCooldown provides Redis-based alert deduplication. A SetNX per
// covenant and alert type wins the suppression window; later recomputations
// inside the window are suppressed.
type AlertCooldown struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAlertCooldown(client *redis.Client, ttl time.Duration) *AlertCooldown {
	if ttl <= 0 {
		ttl = DefaultCooldownMinutes * time.Minute
	}
	return &AlertCooldown{client: client, ttl: ttl}
}

// buildKey builds the Redis key for alert cooldown.
// Format: covena_alert_cooldown:{covenant_id}:{alert_type}
func (c *AlertCooldown) buildKey(covenantID uint, alertType string) string {
	return fmt.Sprintf("%s%d:%s", cooldownKeyPrefix, covenantID, alertType)
}

// Acquire attempts to win the cooldown window for the given covenant and
// alert type. Returns true when this caller won and the alert should be
// created, false when a recent alert already claimed the window.
func (c *AlertCooldown) Acquire(ctx context.Context, covenantID uint, alertType string) (bool, error) {
	key := c.buildKey(covenantID, alertType)

	acquired, err := c.client.SetNX(ctx, key, "1", c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire alert cooldown: %w", err)
	}

	return acquired, nil
}

// Release drops the cooldown early, e.g. after a rolled-back transaction so
// the next recomputation can alert again.
func (c *AlertCooldown) Release(ctx context.Context, covenantID uint, alertType string) error {
	key := c.buildKey(covenantID, alertType)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release alert cooldown: %w", err)
	}

	return nil
}
