package readstore

import (
	"context"
	"log/slog"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"
)

type RoomReadQueries interface {
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Rooms, error)
	GetRoomByNumber(ctx context.Context, db sqlc.DBTX, number int32) (sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	logger  *slog.Logger
}

func NewRoomReadStore(queries RoomReadQueries, logger *slog.Logger) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		logger:  logger,
	}
}

func (r *RoomReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		view, err := r.toRoomView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}

	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find room by ID", err)
	}

	return r.toRoomView(row)
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, db sqlc.DBTX, number int) (*queries.RoomView, error) {
	n, err := pgconv.Int32FromInt(number)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
	}

	row, err := r.queries.GetRoomByNumber(ctx, db, n)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find room by number", err)
	}

	return r.toRoomView(row)
}

func (r *RoomReadStore) toRoomView(row sqlc.Rooms) (*queries.RoomView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid room price", err)
	}

	return &queries.RoomView{
		ID:     row.ID,
		Number: int(row.Number),
		Type:   row.Type,
		Price:  price,
	}, nil
}
