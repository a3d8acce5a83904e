package repository

import (
	"context"
	"log/slog"

	"hotel-backend/internal/domain/client"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) (int64, error)
	DeleteClient(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	logger  *slog.Logger
}

func NewClientRepository(queries ClientWriteQueries, logger *slog.Logger) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *ClientRepository) Create(ctx context.Context, tx sqlc.DBTX, c *client.Client) (int64, error) {
	id, err := r.queries.CreateClient(ctx, tx, sqlc.CreateClientParams{
		Name:  c.Name(),
		Email: c.Email().Value(),
	})
	if err != nil {
		return 0, infra.ClassifyErr(r.logger, "failed to create client", err)
	}
	return id, nil
}

func (r *ClientRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteClient(ctx, tx, id)
	if err != nil {
		return infra.ClassifyErr(r.logger, "failed to delete client", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", nil)
	}
	return nil
}
