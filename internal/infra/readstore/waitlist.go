package readstore

import (
	"context"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/repository/converter"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WaitlistViewQueries interface {
	GetWaitlistEntryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.WaitlistEntries, error)
	GetActiveWaitlistEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveWaitlistEntryParams) (sqlc.WaitlistEntries, error)
	ListActiveWaitlistByDate(ctx context.Context, db sqlc.DBTX, requestedDate pgtype.Date) ([]sqlc.WaitlistEntries, error)
}

type WaitlistReadStore struct {
	queries WaitlistViewQueries
	db      sqlc.DBTX
}

func NewWaitlistReadStore(queries WaitlistViewQueries, db sqlc.DBTX) *WaitlistReadStore {
	return &WaitlistReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WaitlistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	row, err := r.queries.GetWaitlistEntryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waitlist entry by ID", err)
	}
	return entryFromRow(row)
}

// FindActive returns the customer's active entry for the date, if any.
func (r *WaitlistReadStore) FindActive(ctx context.Context, customerID uuid.UUID, date schedule.Date) (*waitlist.Entry, error) {
	params := sqlc.GetActiveWaitlistEntryParams{
		CustomerID:    customerID,
		RequestedDate: pgconv.DateToPgtype(date),
	}

	row, err := r.queries.GetActiveWaitlistEntry(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active waitlist entry", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active waitlist entry", err)
	}
	return entryFromRow(row)
}

// ListActiveOn returns the date's active entries ordered by (created_at, seq).
func (r *WaitlistReadStore) ListActiveOn(ctx context.Context, date schedule.Date) ([]*waitlist.Entry, error) {
	rows, err := r.queries.ListActiveWaitlistByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist entries", err)
	}

	result := make([]*waitlist.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := entryFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

func entryFromRow(row sqlc.WaitlistEntries) (*waitlist.Entry, error) {
	entry, err := converter.WaitlistEntryFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt waitlist row", err, infra.KindDBFailure)
	}
	return entry, nil
}
