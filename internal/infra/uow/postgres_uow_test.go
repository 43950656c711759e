//go:build unit

package uow

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"pawsalon/internal/domain/schedule"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockSQL         = regexp.QuoteMeta("pg_advisory_xact_lock(hashtext($1))")
	insertJobSQL    = regexp.QuoteMeta("INSERT INTO notification_jobs")
	readCommitted   = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	readOnlySnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

func newTestUoW(t *testing.T) (*PostgresUoW, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	u := NewPostgresUoW(mock, sqlc.New())
	u.backoff = time.Millisecond
	return u, mock
}

func queueJob(ctx context.Context, tx shared.Tx) error {
	return tx.Notifications().CreateJob(ctx, "email", "appointment.created", []byte(`{}`), time.Now())
}

// =============================================================================
// Locked Write Transaction Tests
// =============================================================================

func TestPostgresUoW_WithinLocked(t *testing.T) {
	ctx := context.Background()
	key := shared.AppointmentsLock(schedule.NewDate(2030, time.March, 4))

	t.Run("lock is taken before the work and released by commit", func(t *testing.T) {
		u, mock := newTestUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectExec(lockSQL).WithArgs("appointments:2030-03-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(insertJobSQL).
			WithArgs("email", "appointment.created", pgxmock.AnyArg(), pgxmock.AnyArg(), "queued").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := u.WithinLocked(ctx, key, queueJob)

		require.NoError(t, err)
	})

	t.Run("failed work rolls back", func(t *testing.T) {
		u, mock := newTestUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectExec(lockSQL).WithArgs("appointments:2030-03-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()

		boom := errs.New("slot taken")
		err := u.WithinLocked(ctx, key, func(ctx context.Context, tx shared.Tx) error { return boom })

		assert.True(t, errs.Is(err, boom))
	})

	t.Run("lock failure aborts without running the work", func(t *testing.T) {
		u, mock := newTestUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectExec(lockSQL).WithArgs("appointments:2030-03-04").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		ran := false
		err := u.WithinLocked(ctx, key, func(ctx context.Context, tx shared.Tx) error {
			ran = true
			return nil
		})

		assert.True(t, errs.Is(err, errLockAcquire))
		assert.False(t, ran)
	})

	t.Run("deadlock is retried in a fresh transaction", func(t *testing.T) {
		u, mock := newTestUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectExec(lockSQL).WithArgs("appointments:2030-03-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectExec(lockSQL).WithArgs("appointments:2030-03-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectCommit()

		calls := 0
		err := u.WithinLocked(ctx, key, func(ctx context.Context, tx shared.Tx) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context never begins", func(t *testing.T) {
		u, _ := newTestUoW(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := u.WithinLocked(cctx, key, queueJob)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPostgresUoW_Within_GivesUpAfterMaxRetries(t *testing.T) {
	u, mock := newTestUoW(t)
	u.maxRetries = 1
	for range 2 {
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectRollback()
	}

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	})

	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
}

// =============================================================================
// Read-only Snapshot Tests
// =============================================================================

func TestPostgresUoW_WithinReadOnly(t *testing.T) {
	ctx := context.Background()
	date := schedule.NewDate(2030, time.March, 4)

	u, mock := newTestUoW(t)
	mock.ExpectBeginTx(readOnlySnapshot)
	mock.ExpectQuery("ORDER BY created_at, seq").WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "seq", "customer_id", "pet_id", "service_id", "requested_date", "time_preference", "status", "created_at",
		}))
	mock.ExpectCommit()

	err := u.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		entries, err := reads.ActiveWaitlistOn(ctx, date)
		if err != nil {
			return err
		}
		assert.Empty(t, entries)
		return nil
	})

	require.NoError(t, err)
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
