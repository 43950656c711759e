package repository

import (
	"context"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/repository/converter"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	InsertAppointmentAddon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAppointmentAddonParams) error
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts with ON CONFLICT (reference) DO NOTHING: a unique violation
// would abort the surrounding transaction, and the caller wants to retry
// with a fresh reference inside it.
func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	_, err := r.queries.CreateAppointment(ctx, r.db, converter.AppointmentToInfra(appt))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("appointment reference already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create appointment", err)
	}

	for i, addonID := range appt.AddonIDs() {
		params := sqlc.InsertAppointmentAddonParams{
			AppointmentID: appt.ID(),
			AddonID:       addonID,
			Position:      int32(i), // #nosec G115 -- addon lists are short
		}
		if err := r.queries.InsertAppointmentAddon(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to attach addon to appointment", err)
		}
	}

	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, appt *appointment.Appointment) error {
	params := sqlc.UpdateAppointmentStatusParams{
		ID:        appt.ID(),
		Status:    appt.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(appt.UpdatedAt()),
	}

	n, err := r.queries.UpdateAppointmentStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}

	return nil
}
