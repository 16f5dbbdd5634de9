package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// HoldTTL keeps an orphaned hold (process death mid-create) from blocking a
// slot for long.
const HoldTTL = 10 * time.Second

// RedisSlotLock serializes booking creation per (branch, date, slot) across
// processes with a SetNX hold. The database transaction stays the source of
// truth; this only narrows the check-then-act window.
type RedisSlotLock struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int) *RedisSlotLock {
	return &RedisSlotLock{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: HoldTTL,
	}
}

func (l *RedisSlotLock) Acquire(
	ctx context.Context,
	branchID uint,
	date time.Time,
	slot string,
) (bool, error) {
	return l.client.SetNX(ctx, slotKey(branchID, date, slot), "held", l.ttl).Result()
}

func (l *RedisSlotLock) Release(
	ctx context.Context,
	branchID uint,
	date time.Time,
	slot string,
) error {
	return l.client.Del(ctx, slotKey(branchID, date, slot)).Err()
}

func slotKey(branchID uint, date time.Time, slot string) string {
	return fmt.Sprintf("hold:branch:%d:%s:%s", branchID, date.Format("2006-01-02"), slot)
}
