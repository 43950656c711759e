package memstore

import (
	"context"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/infra"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) Catalog() shared.Catalog {
	return (*catalog)(s)
}

type catalog Store

func (c *catalog) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "service not found")
	}
	return &svc, nil
}

func (c *catalog) AddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.AddonSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]shared.AddonSnapshot, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.addons[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (c *catalog) BusinessHours(ctx context.Context, weekday time.Weekday) (schedule.BusinessHours, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if h, ok := c.hours[weekday]; ok {
		return h, nil
	}
	return schedule.Closed(weekday), nil
}
