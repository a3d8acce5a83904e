package shared

import (
	"context"

	"hotel-backend/internal/domain/client"
	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/domain/room"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Clients() ClientRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	RoomByNumber(ctx context.Context, number int) (*RoomSnapshot, error)
	ClientByID(ctx context.Context, id int64) (*ClientSnapshot, error)
	ClientByEmail(ctx context.Context, email string) (*ClientSnapshot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *client.Client) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}
