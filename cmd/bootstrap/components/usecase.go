package components

import (
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/pkg/clock"
	"pawsalon/internal/pkg/config"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		appointment.NewRandomReferenceGenerator,
		fx.As(new(appointment.ReferenceGenerator)),
	),
	NewBookingSettings,
	NewAvailabilitySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewStatusUseCase,
		commands.NewWaitlistUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
	),
)

func NewBookingSettings(cfg config.Config, loc *time.Location) commands.BookingSettings {
	return commands.BookingSettings{
		Location:             loc,
		CommitTimeout:        cfg.Booking.CommitTimeout,
		ReferenceMaxAttempts: cfg.Booking.ReferenceMaxAttempts,
	}
}

func NewAvailabilitySettings(cfg config.Config, loc *time.Location) queries.AvailabilitySettings {
	return queries.AvailabilitySettings{
		Location:      loc,
		SlotInterval:  cfg.Booking.SlotInterval,
		SameDayBuffer: cfg.Booking.SameDayBuffer,
	}
}
