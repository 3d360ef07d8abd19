package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sweepLockKey = "covena_escalation_sweep_lock"

// SweepLock is a best-effort distributed lock so only one worker instance
// runs the escalation sweep per interval.
type SweepLock struct {
	client *redis.Client
}

func NewSweepLock(client *redis.Client) *SweepLock {
	return &SweepLock{client: client}
}

// TryAcquire claims the sweep lock for the given TTL. Returns true when this
// instance should run the sweep.
func (l *SweepLock) TryAcquire(ctx context.Context, ttl time.Duration) (bool, error) {
	acquired, err := l.client.SetNX(ctx, sweepLockKey, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	return acquired, nil
}

// Release frees the lock after a completed sweep.
func (l *SweepLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, sweepLockKey).Err(); err != nil {
		return fmt.Errorf("failed to release sweep lock: %w", err)
	}
	return nil
}
