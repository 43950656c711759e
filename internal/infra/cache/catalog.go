package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pawsalon:catalog:"

// CatalogCache is a read-through cache in front of the catalog store. Redis
// failures are logged and fall back to the store; misses are never cached.
type CatalogCache struct {
	next   shared.Catalog
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(next shared.Catalog, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, client: client, ttl: ttl}
}

func serviceKey(id uuid.UUID) string {
	return keyPrefix + "service:" + id.String()
}

func hoursKey(weekday time.Weekday) string {
	return keyPrefix + "hours:" + strconv.Itoa(int(weekday))
}

func (c *CatalogCache) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var cached shared.ServiceSnapshot
	if c.get(ctx, serviceKey(id), &cached) {
		return &cached, nil
	}

	svc, err := c.next.ServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, serviceKey(id), svc)
	return svc, nil
}

// AddonsByIDs is not cached: the id set differs per booking.
func (c *CatalogCache) AddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.AddonSnapshot, error) {
	return c.next.AddonsByIDs(ctx, ids)
}

func (c *CatalogCache) BusinessHours(ctx context.Context, weekday time.Weekday) (schedule.BusinessHours, error) {
	var cached schedule.BusinessHours
	if c.get(ctx, hoursKey(weekday), &cached) {
		return cached, nil
	}

	hours, err := c.next.BusinessHours(ctx, weekday)
	if err != nil {
		return schedule.BusinessHours{}, err
	}
	c.set(ctx, hoursKey(weekday), hours)
	return hours, nil
}

// Invalidate drops every cached catalog entry. Catalog rows only change through
// migrations and seeds, so it runs once at startup.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "scan catalog keys")
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *CatalogCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errs.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("catalog cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}
