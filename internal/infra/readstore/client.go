package readstore

import (
	"context"
	"log/slog"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"
)

type ClientReadQueries interface {
	ListClients(ctx context.Context, db sqlc.DBTX) ([]sqlc.Clients, error)
	GetClientByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Clients, error)
	GetClientByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Clients, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	logger  *slog.Logger
}

func NewClientReadStore(queries ClientReadQueries, logger *slog.Logger) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		logger:  logger,
	}
}

func (r *ClientReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.ClientView, error) {
	rows, err := r.queries.ListClients(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list clients", err)
	}

	result := make([]*queries.ClientView, len(rows))
	for i, row := range rows {
		result[i] = toClientView(row)
	}

	return result, nil
}

func (r *ClientReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find client by ID", err)
	}

	return toClientView(row), nil
}

func (r *ClientReadStore) FindByEmail(ctx context.Context, db sqlc.DBTX, email string) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByEmail(ctx, db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find client by email", err)
	}

	return toClientView(row), nil
}

func toClientView(row sqlc.Clients) *queries.ClientView {
	return &queries.ClientView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
