package repository

import (
	"context"
	"log/slog"

	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (int64, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	logger  *slog.Logger
}

func NewRoomRepository(queries RoomWriteQueries, logger *slog.Logger) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (int64, error) {
	number, price, err := r.columns(rm)
	if err != nil {
		return 0, err
	}

	id, err := r.queries.CreateRoom(ctx, tx, sqlc.CreateRoomParams{
		Number: number,
		Type:   rm.Type(),
		Price:  price,
	})
	if err != nil {
		return 0, infra.ClassifyErr(r.logger, "failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	number, price, err := r.columns(rm)
	if err != nil {
		return err
	}

	affected, err := r.queries.UpdateRoom(ctx, tx, sqlc.UpdateRoomParams{
		ID:     rm.ID(),
		Number: number,
		Type:   rm.Type(),
		Price:  price,
	})
	if err != nil {
		return infra.ClassifyErr(r.logger, "failed to update room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.ClassifyErr(r.logger, "failed to delete room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) columns(rm *room.Room) (int32, pgtype.Numeric, error) {
	number, err := pgconv.Int32FromInt(rm.Number())
	if err != nil {
		return 0, pgtype.Numeric{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "room number out of range", err)
	}
	price, err := pgconv.Float64ToNumeric(rm.Price())
	if err != nil {
		return 0, pgtype.Numeric{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid room price", err)
	}
	return number, price, nil
}
