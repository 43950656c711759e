package converter

import (
	"fmt"
	"math"

	"pawsalon/internal/domain/appointment"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"
)

func AppointmentToInfra(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	minutes := a.DurationMinutes()
	if minutes > math.MaxInt32 {
		panic(fmt.Sprintf("duration minutes out of int32 range: %d", minutes))
	}

	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		CustomerID:      a.CustomerID(),
		PetID:           a.PetID(),
		ServiceID:       a.ServiceID(),
		ScheduledAt:     pgconv.TimeToPgtype(a.Interval().Start()),
		EndsAt:          pgconv.TimeToPgtype(a.Interval().End()),
		DurationMinutes: int32(minutes),
		TotalPriceCents: a.TotalPrice().Cents(),
		Status:          a.Status().String(),
		Reference:       a.Reference().String(),
		Notes:           pgconv.OptionalText(a.Notes()),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentFromInfra(row sqlc.GetAppointmentByIDRow) (*appointment.Appointment, error) {
	start := pgconv.TimeFromPgtype(row.ScheduledAt)
	interval, err := appointment.NewInterval(start, pgconv.TimeFromPgtype(row.EndsAt).Sub(start))
	if err != nil {
		return nil, err
	}
	price, err := appointment.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	ref, err := appointment.ParseReference(row.Reference)
	if err != nil {
		return nil, err
	}

	return appointment.ReconstructAppointment(
		row.ID, row.CustomerID, row.PetID, row.ServiceID,
		interval,
		row.AddonIds,
		price,
		status,
		ref,
		pgconv.TextValue(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OccupancyFromInfra(row sqlc.ListOccupanciesBetweenRow) (appointment.Occupancy, error) {
	start := pgconv.TimeFromPgtype(row.ScheduledAt)
	interval, err := appointment.NewInterval(start, pgconv.TimeFromPgtype(row.EndsAt).Sub(start))
	if err != nil {
		return appointment.Occupancy{}, err
	}
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return appointment.Occupancy{}, err
	}
	return appointment.Occupancy{AppointmentID: row.ID, Interval: interval, Status: status}, nil
}
