package converter

import (
	"pawsalon/internal/domain/waitlist"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"
)

func WaitlistEntryToInfra(e *waitlist.Entry) sqlc.CreateWaitlistEntryParams {
	return sqlc.CreateWaitlistEntryParams{
		ID:             e.ID(),
		CustomerID:     e.CustomerID(),
		PetID:          e.PetID(),
		ServiceID:      e.ServiceID(),
		RequestedDate:  pgconv.DateToPgtype(e.RequestedDate()),
		TimePreference: e.Preference().String(),
		Status:         e.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func WaitlistEntryFromInfra(row sqlc.WaitlistEntries) (*waitlist.Entry, error) {
	pref, err := waitlist.ParsePreference(row.TimePreference)
	if err != nil {
		return nil, err
	}
	status, err := waitlist.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return waitlist.ReconstructEntry(
		row.ID, row.CustomerID, row.PetID, row.ServiceID,
		pgconv.DateFromPgtype(row.RequestedDate),
		pref,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		row.Seq,
	), nil
}
