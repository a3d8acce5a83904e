//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/room"
	reqdto "hotel-backend/internal/handler/dto/request"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID        int64
	Number    int
	Type      string
	Price     float64
	CreatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        1,
		Number:    101,
		Type:      "Simple",
		Price:     100,
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.ID, b.Number, b.Type, b.Price)
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	price, err := pgconv.Float64ToNumeric(b.Price)
	if err != nil {
		panic(err)
	}
	ts := pgtype.Timestamptz{Time: b.CreatedAt, Valid: true}
	return sqlc.Rooms{
		ID:        b.ID,
		Number:    int32(b.Number),
		Type:      b.Type,
		Price:     price,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func (b *RoomBuilder) BuildRequestDTO() reqdto.RoomRequest {
	return reqdto.RoomRequest{
		Number: b.Number,
		Type:   b.Type,
		Price:  b.Price,
	}
}

func (b *RoomBuilder) BuildInput() commands.RoomInput {
	return b.BuildRequestDTO().ToInput()
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:     b.ID,
		Number: b.Number,
		Type:   b.Type,
		Price:  b.Price,
	}
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:     b.ID,
		Number: b.Number,
		Type:   b.Type,
		Price:  b.Price,
	}
}
