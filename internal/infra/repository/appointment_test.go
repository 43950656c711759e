//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/repository"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"
	"pawsalon/tests/common/builder"
	repositorymock "pawsalon/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Appointment Tests
// =============================================================================

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	addonA, addonB := uuid.New(), uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment and addon rows inserted in order",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error) {
							assert.Equal(t, appt.ID(), arg.ID)
							assert.Equal(t, "APT-2030-000042", arg.Reference)
							assert.Equal(t, int32(60), arg.DurationMinutes)
							assert.True(t, arg.EndsAt.Time.Equal(appt.Interval().End()))
							assert.Equal(t, "Nervous around dryers", arg.Notes.String)
							return arg.ID, nil
						}),
					mock.EXPECT().InsertAppointmentAddon(ctx, tx, sqlc.InsertAppointmentAddonParams{
						AppointmentID: appt.ID(), AddonID: addonA, Position: 0,
					}).Return(nil),
					mock.EXPECT().InsertAppointmentAddon(ctx, tx, sqlc.InsertAppointmentAddonParams{
						AppointmentID: appt.ID(), AddonID: addonB, Position: 1,
					}).Return(nil),
				)
			},
		},
		{
			name: "error: reference already taken",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: exclusion constraint rejects an overlap",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, excl)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown addon",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(appt.ID(), nil)
				mock.EXPECT().InsertAppointmentAddon(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, appt *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			appt := builder.NewAppointmentBuilder().
				With(func(b *builder.AppointmentBuilder) { b.AddonIDs = []uuid.UUID{addonA, addonB} }).
				BuildDomain()

			tc.setupMock(mockQueries, appt, mockDB)

			actualError := repo.Create(ctx, appt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status updated", rows: 1},
		{name: "error: appointment missing", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			appt := builder.NewAppointmentBuilder().
				With(func(b *builder.AppointmentBuilder) { b.Status = appointment.StatusConfirmed }).
				BuildDomain()

			mockQueries.EXPECT().UpdateAppointmentStatus(ctx, mockDB, sqlc.UpdateAppointmentStatusParams{
				ID:        appt.ID(),
				Status:    "confirmed",
				UpdatedAt: pgconv.TimeToPgtype(appt.UpdatedAt()),
			}).Return(tc.rows, tc.queryErr)

			actualError := repo.UpdateStatus(ctx, appt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
