package readstore

import (
	"context"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/repository/converter"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAppointmentByIDRow, error)
	ListOccupanciesBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupanciesBetweenParams) ([]sqlc.ListOccupanciesBetweenRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	appt, err := converter.AppointmentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt appointment row", err, infra.KindDBFailure)
	}
	return appt, nil
}

// OccupanciesBetween returns slot-holding appointments overlapping [from, to), earliest first.
func (r *AppointmentReadStore) OccupanciesBetween(ctx context.Context, from, to time.Time) ([]appointment.Occupancy, error) {
	params := sqlc.ListOccupanciesBetweenParams{
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	}

	rows, err := r.queries.ListOccupanciesBetween(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}

	result := make([]appointment.Occupancy, 0, len(rows))
	for _, row := range rows {
		occ, err := converter.OccupancyFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt appointment row", err, infra.KindDBFailure)
		}
		result = append(result, occ)
	}
	return result, nil
}
