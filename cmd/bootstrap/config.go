package bootstrap

import (
	"time"

	"pawsalon/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
