package repository

import (
	"context"

	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/repository/converter"
	sqlc "pawsalon/internal/infra/sqlc/generated"
)

type WaitlistWriteQueries interface {
	CreateWaitlistEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWaitlistEntryParams) (int64, error)
	UpdateWaitlistEntryStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWaitlistEntryStatusParams) (int64, error)
}

type WaitlistRepository struct {
	queries WaitlistWriteQueries
	db      sqlc.DBTX
}

func NewWaitlistRepository(queries WaitlistWriteQueries, db sqlc.DBTX) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, entry *waitlist.Entry) error {
	seq, err := r.queries.CreateWaitlistEntry(ctx, r.db, converter.WaitlistEntryToInfra(entry))
	if err != nil {
		return infra.WrapRepoErr("failed to create waitlist entry", err)
	}

	entry.AssignSeq(seq)
	return nil
}

func (r *WaitlistRepository) UpdateStatus(ctx context.Context, entry *waitlist.Entry) error {
	params := sqlc.UpdateWaitlistEntryStatusParams{
		ID:     entry.ID(),
		Status: entry.Status().String(),
	}

	n, err := r.queries.UpdateWaitlistEntryStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update waitlist entry status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}

	return nil
}
