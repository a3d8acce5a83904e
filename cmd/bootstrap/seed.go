package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Provide(commands.NewDemoSeeder),
	fx.Invoke(RegisterSeeder),
)

// RegisterSeeder inserts the demo room and client at startup. Runs after
// the migration hook because fx starts hooks in registration order.
func RegisterSeeder(lc fx.Lifecycle, cfg config.Config, seeder commands.DemoSeeder, logger *slog.Logger) {
	if !cfg.Seed.DemoData {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			res, err := seeder.Seed(ctx)
			if err != nil {
				return err
			}
			logger.Info("demo data ready",
				"room_created", res.RoomCreated,
				"client_created", res.ClientCreated,
			)
			return nil
		},
	})
}
