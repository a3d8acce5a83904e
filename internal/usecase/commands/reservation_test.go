//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("books an existing room for an existing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReservationCommands(m.uow)
		input := builder.NewReservationBuilder().BuildInput()

		gomock.InOrder(
			m.reads.EXPECT().ClientByID(gomock.Any(), input.ClientID).Return(builder.NewClientBuilder().BuildSnapshot(), nil),
			m.reads.EXPECT().RoomByID(gomock.Any(), input.RoomID).Return(builder.NewRoomBuilder().BuildSnapshot(), nil),
			m.reservations.EXPECT().
				Create(gomock.Any(), m.db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (int64, error) {
					assert.Equal(t, input.ArrivalDate, res.Window().Arrival())
					assert.Equal(t, 9, res.Window().Nights())
					assert.Equal(t, "confirmed", res.Status().String())
					return 21, nil
				}),
		)

		id, err := uc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
	})

	t.Run("open-ended stay is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReservationCommands(m.uow)
		input := builder.NewReservationBuilder().OpenEnded().BuildInput()

		m.reads.EXPECT().ClientByID(gomock.Any(), input.ClientID).Return(builder.NewClientBuilder().BuildSnapshot(), nil)
		m.reads.EXPECT().RoomByID(gomock.Any(), input.RoomID).Return(builder.NewRoomBuilder().BuildSnapshot(), nil)
		m.reservations.EXPECT().
			Create(gomock.Any(), m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (int64, error) {
				assert.True(t, res.Window().IsOpenEnded())
				return 22, nil
			})

		id, err := uc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(22), id)
	})

	t.Run("departure not after arrival is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReservationCommands(m.uow)
		input := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.DepartureDate = &b.ArrivalDate }).
			BuildInput()

		_, err := uc.Create(ctx, input)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, reservation.ErrInvalidStayWindow))
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReservationCommands(m.uow)

		m.reads.EXPECT().ClientByID(gomock.Any(), int64(1)).Return(nil, repoErr(infra.KindNotFound, nil))

		_, err := uc.Create(ctx, builder.NewReservationBuilder().BuildInput())

		assert.True(t, errs.Is(err, errs.ErrClientNotFound))
		assert.False(t, errs.Is(err, errs.ErrRoomNotFound))
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReservationCommands(m.uow)

		m.reads.EXPECT().ClientByID(gomock.Any(), int64(1)).Return(builder.NewClientBuilder().BuildSnapshot(), nil)
		m.reads.EXPECT().RoomByID(gomock.Any(), int64(1)).Return(nil, repoErr(infra.KindNotFound, nil))

		_, err := uc.Create(ctx, builder.NewReservationBuilder().BuildInput())

		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})

	testCases := []struct {
		name      string
		insertErr error
		expectErr error
	}{
		{
			name:      "overlapping stay",
			insertErr: repoErr(infra.KindConflict, &pgconn.PgError{Code: "23P01", ConstraintName: infra.ConstraintNoDoubleBook}),
			expectErr: errs.ErrRoomUnavailable,
		},
		{
			name:      "client removed before insert",
			insertErr: repoErr(infra.KindForeignKeyViolated, &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintClientFK}),
			expectErr: errs.ErrClientNotFound,
		},
		{
			name:      "room removed before insert",
			insertErr: repoErr(infra.KindForeignKeyViolated, &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintRoomFK}),
			expectErr: errs.ErrRoomNotFound,
		},
		{
			name:      "database failure",
			insertErr: repoErr(infra.KindDBFailure, nil),
			expectErr: errDBDown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			uc := commands.NewReservationCommands(m.uow)

			m.reads.EXPECT().ClientByID(gomock.Any(), gomock.Any()).Return(builder.NewClientBuilder().BuildSnapshot(), nil)
			m.reads.EXPECT().RoomByID(gomock.Any(), gomock.Any()).Return(builder.NewRoomBuilder().BuildSnapshot(), nil)
			m.reservations.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(int64(0), tc.insertErr)

			id, err := uc.Create(ctx, builder.NewReservationBuilder().BuildInput())

			require.Error(t, err)
			assert.Zero(t, id)
			assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
		})
	}
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reservations.EXPECT().Delete(gomock.Any(), m.db, int64(5)).Return(nil)

		require.NoError(t, commands.NewReservationCommands(m.uow).Cancel(ctx, 5))
	})

	t.Run("missing reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reservations.EXPECT().Delete(gomock.Any(), m.db, int64(5)).Return(repoErr(infra.KindNotFound, nil))

		err := commands.NewReservationCommands(m.uow).Cancel(ctx, 5)

		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}
