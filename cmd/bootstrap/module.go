package bootstrap

import (
	"hotel-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MigrateModule,
	components.PersistenceModule,
	components.UseCaseModule,
	SeedModule,
	components.HandlerModule,
)
