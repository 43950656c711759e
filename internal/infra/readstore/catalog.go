package readstore

import (
	"context"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/infra"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogViewQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetServiceByIDRow, error)
	ListAddonsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Addons, error)
	GetBusinessHours(ctx context.Context, db sqlc.DBTX, weekday int16) (sqlc.BusinessHours, error)
}

// CatalogReadStore serves services, addons and opening hours straight from
// the pool; it is the uncached Catalog.
type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return &shared.ServiceSnapshot{
		ID:              row.ID,
		Name:            row.Name,
		DurationMinutes: int(row.DurationMinutes),
		BasePriceCents:  row.BasePriceCents,
		Active:          row.Active,
	}, nil
}

// AddonsByIDs returns the addons that exist, in the order requested. Unknown
// ids are simply absent from the result.
func (r *CatalogReadStore) AddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.AddonSnapshot, error) {
	if len(ids) == 0 {
		return []shared.AddonSnapshot{}, nil
	}

	rows, err := r.queries.ListAddonsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addons", err)
	}

	byID := make(map[uuid.UUID]sqlc.Addons, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	result := make([]shared.AddonSnapshot, 0, len(rows))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, shared.AddonSnapshot{
			ID:         row.ID,
			Name:       row.Name,
			PriceCents: row.PriceCents,
			Active:     row.Active,
		})
	}
	return result, nil
}

// BusinessHours treats a weekday without a row as closed.
func (r *CatalogReadStore) BusinessHours(ctx context.Context, weekday time.Weekday) (schedule.BusinessHours, error) {
	row, err := r.queries.GetBusinessHours(ctx, r.db, int16(weekday)) // #nosec G115 -- weekday is 0..6
	if err != nil {
		if pgconv.IsNoRows(err) {
			return schedule.Closed(weekday), nil
		}
		return schedule.BusinessHours{}, infra.WrapRepoErr("failed to find business hours", err)
	}
	if !row.IsOpen {
		return schedule.Closed(weekday), nil
	}

	hours, err := schedule.NewBusinessHours(
		weekday,
		pgconv.ClockTimeFromPgtype(row.OpenTime),
		pgconv.ClockTimeFromPgtype(row.CloseTime),
		true,
	)
	if err != nil {
		return schedule.BusinessHours{}, infra.WrapRepoErr("invalid business hours row", err, infra.KindDBFailure)
	}
	return hours, nil
}
