package commands

import (
	"context"

	"hotel-backend/internal/domain/client"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type ClientInput struct {
	Name  string
	Email string
}

type ClientCommands interface {
	Create(ctx context.Context, in ClientInput) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type clientCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewClientCommands(uow shared.UnitOfWork) ClientCommands {
	return &clientCommandsImpl{uow: uow}
}

func (uc *clientCommandsImpl) Create(ctx context.Context, in ClientInput) (int64, error) {
	c, err := client.NewClient(0, in.Name, in.Email)
	if err != nil {
		return 0, markValidation(err)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Clients().Create(ctx, tx.DB(), c)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, mapClientErr(err)
	}
	return createdID, nil
}

func (uc *clientCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapClientErr(err)
	}
	return nil
}

func mapClientErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrClientNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrClientEmailTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrClientInUse)
	default:
		return err
	}
}
