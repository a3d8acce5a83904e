//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"

	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/usecase/shared"
	sharedmock "hotel-backend/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type mockDBTX struct {
	sqlc.DBTX
}

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	rooms        *sharedmock.MockRoomRepository
	clients      *sharedmock.MockClientRepository
	reservations *sharedmock.MockReservationRepository
	db           sqlc.DBTX
}

// newTxMocks wires a unit of work whose Within runs fn against a mocked
// transaction. Accessors may be called any number of times.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		clients:      sharedmock.NewMockClientRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		db:           &mockDBTX{},
	}

	m.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).
		AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Clients().Return(m.clients).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
