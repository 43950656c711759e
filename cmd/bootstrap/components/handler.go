package components

import (
	"pawsalon/internal/handler"
	"pawsalon/internal/handler/api"
	"pawsalon/internal/handler/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewWaitlistHandler,
		NewHandlers,
		NewPinger,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

func NewHandlers(availability *api.AvailabilityHandler, appointment *api.AppointmentHandler, waitlist *api.WaitlistHandler) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Appointment:  appointment,
		Waitlist:     waitlist,
	}
}

func NewPinger(pool *pgxpool.Pool) handler.Pinger {
	return pool
}
