package commands

import (
	"context"

	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

type RoomInput struct {
	Number int
	Type   string
	Price  float64
}

type RoomCommands interface {
	Create(ctx context.Context, in RoomInput) (int64, error)
	Update(ctx context.Context, id int64, in RoomInput) error
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (uc *roomCommandsImpl) Create(ctx context.Context, in RoomInput) (int64, error) {
	r, err := room.NewRoom(0, in.Number, in.Type, in.Price)
	if err != nil {
		return 0, markValidation(err)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Rooms().Create(ctx, tx.DB(), r)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, mapRoomErr(err)
	}
	return createdID, nil
}

func (uc *roomCommandsImpl) Update(ctx context.Context, id int64, in RoomInput) error {
	r, err := room.NewRoom(id, in.Number, in.Type, in.Price)
	if err != nil {
		return markValidation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Update(ctx, tx.DB(), r)
	})
	if err != nil {
		return mapRoomErr(err)
	}
	return nil
}

func (uc *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapRoomErr(err)
	}
	return nil
}

func mapRoomErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrRoomNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrRoomNumberTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomInUse)
	default:
		return err
	}
}
