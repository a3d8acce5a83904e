package commands

import (
	"context"
	"time"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type CreateReservationInput struct {
	ClientID      int64
	RoomID        int64
	ArrivalDate   time.Time
	DepartureDate *time.Time // nil books the room open-ended
	Status        string
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (int64, error)
	Cancel(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReservationCommands(uow shared.UnitOfWork) ReservationCommands {
	return &reservationCommandsImpl{uow: uow}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (int64, error) {
	res, err := reservation.NewReservation(in.ClientID, in.RoomID, in.ArrivalDate, in.DepartureDate, in.Status)
	if err != nil {
		return 0, markValidation(err)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, res.ClientID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrClientNotFound)
			}
			return err
		}
		if _, err := tx.Reads().RoomByID(ctx, res.RoomID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return err
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, mapReservationCreateErr(err)
	}
	return createdID, nil
}

func (uc *reservationCommandsImpl) Cancel(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return err
	}
	return nil
}

// A client or room deleted between the existence check and the insert
// still surfaces as not found.
func mapReservationCreateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrRoomUnavailable)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		if infra.ConstraintOf(err) == infra.ConstraintClientFK {
			return errs.Mark(err, errs.ErrClientNotFound)
		}
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return err
	}
}
