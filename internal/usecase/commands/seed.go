package commands

import (
	"context"

	"hotel-backend/internal/domain/client"
	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/usecase/shared"
)

// Demo data created on first start of a development instance.
var (
	DemoRoom   = RoomInput{Number: 101, Type: "Simple", Price: 100}
	DemoClient = ClientInput{Name: "Martin", Email: "martin@example.com"}
)

type SeedResult struct {
	RoomCreated   bool
	ClientCreated bool
}

type DemoSeeder interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type demoSeederImpl struct {
	uow shared.UnitOfWork
}

func NewDemoSeeder(uow shared.UnitOfWork) DemoSeeder {
	return &demoSeederImpl{uow: uow}
}

// Seed is idempotent: records that already exist are left untouched.
func (s *demoSeederImpl) Seed(ctx context.Context) (*SeedResult, error) {
	r, err := room.NewRoom(0, DemoRoom.Number, DemoRoom.Type, DemoRoom.Price)
	if err != nil {
		return nil, err
	}
	c, err := client.NewClient(0, DemoClient.Name, DemoClient.Email)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = SeedResult{}

		created, err := createIfMissing(func() error {
			_, err := tx.Reads().RoomByNumber(ctx, r.Number())
			return err
		}, func() error {
			_, err := tx.Rooms().Create(ctx, tx.DB(), r)
			return err
		})
		if err != nil {
			return err
		}
		result.RoomCreated = created

		created, err = createIfMissing(func() error {
			_, err := tx.Reads().ClientByEmail(ctx, c.Email().Value())
			return err
		}, func() error {
			_, err := tx.Clients().Create(ctx, tx.DB(), c)
			return err
		})
		if err != nil {
			return err
		}
		result.ClientCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func createIfMissing(find, create func() error) (bool, error) {
	err := find()
	if err == nil {
		return false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return false, err
	}
	if err := create(); err != nil {
		return false, err
	}
	return true, nil
}
