package queries

import (
	"context"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type RoomReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*RoomView, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*RoomView, error)
}

type BookingReadStore interface {
	FindOverlapping(ctx context.Context, db sqlc.DBTX, window reservation.StayWindow) ([]reservation.Booking, error)
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	// Available lists the rooms with no reservation overlapping window.
	Available(ctx context.Context, window reservation.StayWindow) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	uow      shared.UnitOfWork
	rooms    RoomReadStore
	bookings BookingReadStore
}

func NewRoomQueries(uow shared.UnitOfWork, rooms RoomReadStore, bookings BookingReadStore) RoomQueries {
	return &roomQueriesImpl{
		uow:      uow,
		rooms:    rooms,
		bookings: bookings,
	}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	var rooms []*RoomView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rooms, err = q.rooms.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	var room *RoomView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		room, err = q.rooms.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, err
	}
	return room, nil
}

// Rooms and overlapping reservations are read in one snapshot so a booking
// committed in between cannot be missed.
func (q *roomQueriesImpl) Available(ctx context.Context, window reservation.StayWindow) ([]*RoomView, error) {
	var available []*RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		bookings, err := q.bookings.FindOverlapping(ctx, db, window)
		if err != nil {
			return err
		}

		rooms, err := q.rooms.List(ctx, db)
		if err != nil {
			return err
		}

		available = reservation.AvailableRooms(rooms, roomViewID, bookings, window)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return available, nil
}

func roomViewID(r *RoomView) int64 {
	return r.ID
}
