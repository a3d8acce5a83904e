package repository

import (
	"context"
	"log/slog"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	logger  *slog.Logger
}

func NewReservationRepository(queries ReservationWriteQueries, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		logger:  logger,
	}
}

// Create relies on reservations_no_double_booking; an overlapping stay for
// the same room surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	window := res.Window()
	id, err := r.queries.CreateReservation(ctx, tx, sqlc.CreateReservationParams{
		ClientID:  res.ClientID(),
		RoomID:    res.RoomID(),
		Arrival:   pgconv.DateToPgtype(window.Arrival()),
		Departure: pgconv.DatePtrToPgtype(window.Departure()),
		Status:    res.Status().String(),
	})
	if err != nil {
		return 0, infra.ClassifyErr(r.logger, "failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.ClassifyErr(r.logger, "failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}
