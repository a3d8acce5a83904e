package readstore

import (
	"context"
	"log/slog"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationByIDRow, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.ListOverlappingReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationReadQueries, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		logger:  logger,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:            row.ID,
		ClientID:      row.ClientID,
		ClientName:    row.ClientName,
		ClientEmail:   row.ClientEmail,
		RoomID:        row.RoomID,
		RoomNumber:    int(row.RoomNumber),
		ArrivalDate:   pgconv.DateFromPgtype(row.Arrival),
		DepartureDate: pgconv.DatePtrFromPgtype(row.Departure),
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindOverlapping returns the bookings whose stay overlaps window.
func (r *ReservationReadStore) FindOverlapping(ctx context.Context, db sqlc.DBTX, window reservation.StayWindow) ([]reservation.Booking, error) {
	params := sqlc.ListOverlappingReservationsParams{
		Departure: upperBound(window),
		Arrival:   pgconv.DateToPgtype(window.Arrival()),
	}

	rows, err := r.queries.ListOverlappingReservations(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list overlapping reservations", err)
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		stay, err := reservation.NewStayWindow(pgconv.DateFromPgtype(row.Arrival), pgconv.DatePtrFromPgtype(row.Departure))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid stored stay window", err)
		}
		bookings = append(bookings, reservation.Booking{RoomID: row.RoomID, Window: stay})
	}

	return bookings, nil
}

// NULL never compares true, so an open-ended window is bounded by infinity.
func upperBound(window reservation.StayWindow) pgtype.Date {
	if window.IsOpenEnded() {
		return pgtype.Date{InfinityModifier: pgtype.Infinity, Valid: true}
	}
	return pgconv.DateToPgtype(*window.Departure())
}
