//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/tests/common/builder"
	queriesmock "hotel-backend/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func roomView(id int64, number int) *queries.RoomView {
	return builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.ID = id
		b.Number = number
	}).BuildView()
}

func bookingOn(roomID int64, arrival, departure string) reservation.Booking {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = roomID
		b.ArrivalDate, _ = reservation.ParseDate(arrival)
		b.DepartureDate, _ = reservation.ParseOptionalDate(&departure)
	}).BuildBooking()
}

func TestRoomQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		expected := roomView(3, 103)
		rooms.EXPECT().FindByID(gomock.Any(), db, int64(3)).Return(expected, nil)

		actual, err := queries.NewRoomQueries(newUoW(ctrl, db), rooms, queriesmock.NewMockBookingReadStore(ctrl)).GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("not found is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		rooms.EXPECT().FindByID(gomock.Any(), db, int64(3)).Return(nil, notFoundErr())

		_, err := queries.NewRoomQueries(newUoW(ctrl, db), rooms, queriesmock.NewMockBookingReadStore(ctrl)).GetByID(ctx, 3)

		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}

func TestRoomQueries_List(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	ctrl := gomock.NewController(t)
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	expected := []*queries.RoomView{roomView(1, 101), roomView(2, 102)}
	rooms.EXPECT().List(gomock.Any(), db).Return(expected, nil)

	actual, err := queries.NewRoomQueries(newUoW(ctrl, db), rooms, queriesmock.NewMockBookingReadStore(ctrl)).List(ctx)

	require.NoError(t, err)
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoomQueries_Available(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	all := []*queries.RoomView{roomView(1, 101), roomView(2, 102), roomView(3, 201)}

	window := func(t *testing.T, from, to string) reservation.StayWindow {
		t.Helper()
		a, err := reservation.ParseDate(from)
		require.NoError(t, err)
		d, err := reservation.ParseDate(to)
		require.NoError(t, err)
		w, err := reservation.NewQueryWindow(a, d)
		require.NoError(t, err)
		return w
	}

	testCases := []struct {
		name     string
		from, to string
		bookings []reservation.Booking
		expected []*queries.RoomView
	}{
		{
			name:     "no bookings",
			from:     "2024-01-01",
			to:       "2024-01-05",
			expected: all,
		},
		{
			name:     "booked room is excluded",
			from:     "2024-01-05",
			to:       "2024-01-06",
			bookings: []reservation.Booking{bookingOn(1, "2024-01-01", "2024-01-10")},
			expected: []*queries.RoomView{all[1], all[2]},
		},
		{
			name:     "same-day window inside a stay excludes the room",
			from:     "2024-01-05",
			to:       "2024-01-05",
			bookings: []reservation.Booking{bookingOn(1, "2024-01-01", "2024-01-10")},
			expected: []*queries.RoomView{all[1], all[2]},
		},
		{
			name:     "open-ended stay blocks later windows",
			from:     "2025-06-01",
			to:       "2025-06-03",
			bookings: []reservation.Booking{bookingOn(3, "2024-01-01", "")},
			expected: []*queries.RoomView{all[0], all[1]},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rooms := queriesmock.NewMockRoomReadStore(ctrl)
			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			w := window(t, tc.from, tc.to)

			gomock.InOrder(
				bookings.EXPECT().FindOverlapping(gomock.Any(), db, w).Return(tc.bookings, nil),
				rooms.EXPECT().List(gomock.Any(), db).Return(all, nil),
			)

			actual, err := queries.NewRoomQueries(newUoW(ctrl, db), rooms, bookings).Available(ctx, w)

			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("Available() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("booking lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		bookings.EXPECT().FindOverlapping(gomock.Any(), db, gomock.Any()).Return(nil, errDBDown)

		_, err := queries.NewRoomQueries(newUoW(ctrl, db), queriesmock.NewMockRoomReadStore(ctrl), bookings).
			Available(ctx, window(t, "2024-01-01", "2024-01-02"))

		require.ErrorIs(t, err, errDBDown)
	})
}
