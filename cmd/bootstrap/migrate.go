package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RegisterMigrations),
)

// RegisterMigrations applies pending migrations before the server starts.
// The pool is requested so the database is known to be reachable first.
func RegisterMigrations(lc fx.Lifecycle, cfg config.Config, _ *pgxpool.Pool, logger *slog.Logger) {
	if !cfg.DB.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ApplyMigrations(ctx, cfg.DB, logger)
		},
	})
}

func ApplyMigrations(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasBinary)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.MigrationURL(),
		DirURL: cfg.MigrationsDir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
