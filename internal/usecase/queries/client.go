package queries

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type ClientReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*ClientView, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*ClientView, error)
}

type ClientQueries interface {
	List(ctx context.Context) ([]*ClientView, error)
	GetByID(ctx context.Context, id int64) (*ClientView, error)
}

type clientQueriesImpl struct {
	uow   shared.UnitOfWork
	store ClientReadStore
}

func NewClientQueries(uow shared.UnitOfWork, store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{uow: uow, store: store}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]*ClientView, error) {
	var clients []*ClientView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		clients, err = q.store.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id int64) (*ClientView, error) {
	var client *ClientView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		client, err = q.store.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, err
	}
	return client, nil
}
