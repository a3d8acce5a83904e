package queries

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow   shared.UnitOfWork
	store ReservationReadStore
}

func NewReservationQueries(uow shared.UnitOfWork, store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.store.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}
