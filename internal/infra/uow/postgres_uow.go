package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra/readstore"
	"pawsalon/internal/infra/repository"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	advisoryLockSQL = "SELECT pg_advisory_xact_lock(hashtext($1))"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errLockAcquire        = errs.New("failed to acquire advisory lock")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool       TxBeginner
	q          *sqlc.Queries
	maxRetries int
	backoff    time.Duration
}

func NewPostgresUoW(pool TxBeginner, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: 3,
		backoff:    100 * time.Millisecond,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, "", fn)
}

// WithinLocked serializes writers of the same key through a transaction-scoped
// advisory lock. The lock is released by commit or rollback, never explicitly.
func (u *PostgresUoW) WithinLocked(ctx context.Context, key shared.LockKey, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, key.String(), fn)
}

// Repeatable read gives one snapshot across statements; advisory locks are
// not taken, so readers never queue behind a booking.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, lockKey string, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = u.attempt(ctx, pgxTx, lockKey, fn)

		if err != nil {
			if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
				if !errs.Is(rollbackErr, pgx.ErrTxClosed) {
					slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
				}
			}
		} else {
			return nil
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if attempt == u.maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.backoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"lock_key", lockKey,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(ctx context.Context, pgxTx pgx.Tx, lockKey string, fn func(ctx context.Context, tx shared.Tx) error) error {
	if lockKey != "" {
		if _, err := pgxTx.Exec(ctx, advisoryLockSQL, lockKey); err != nil {
			return errs.Mark(errs.Wrapf(err, "lock %s", lockKey), errLockAcquire)
		}
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errs.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgReads{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the sign bit before converting
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	waitlistRepo     shared.WaitlistRepository
	notificationRepo shared.NotificationRepository
	reads            shared.Reads
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q, t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Waitlist() shared.WaitlistRepository {
	if t.waitlistRepo == nil {
		t.waitlistRepo = repository.NewWaitlistRepository(t.uow.q, t.dbtx)
	}
	return t.waitlistRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = &pgReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.reads
}

type pgReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	waitlistStore    *readstore.WaitlistReadStore
}

func (r *pgReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.uow.q, r.dbtx)
	}
	return r.appointmentStore
}

func (r *pgReads) waitlist() *readstore.WaitlistReadStore {
	if r.waitlistStore == nil {
		r.waitlistStore = readstore.NewWaitlistReadStore(r.uow.q, r.dbtx)
	}
	return r.waitlistStore
}

func (r *pgReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return r.appointments().FindByID(ctx, id)
}

func (r *pgReads) OccupanciesBetween(ctx context.Context, from, to time.Time) ([]appointment.Occupancy, error) {
	return r.appointments().OccupanciesBetween(ctx, from, to)
}

func (r *pgReads) WaitlistEntryByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	return r.waitlist().FindByID(ctx, id)
}

func (r *pgReads) ActiveWaitlistEntry(ctx context.Context, customerID uuid.UUID, date schedule.Date) (*waitlist.Entry, error) {
	return r.waitlist().FindActive(ctx, customerID, date)
}

func (r *pgReads) ActiveWaitlistOn(ctx context.Context, date schedule.Date) ([]*waitlist.Entry, error) {
	return r.waitlist().ListActiveOn(ctx, date)
}
