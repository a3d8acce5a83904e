//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-backend/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type testRoom struct {
	ID     int64
	Number int
}

func roomID(r testRoom) int64 { return r.ID }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := reservation.ParseDate(s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, roomID int64, arrival, departure string) reservation.Booking {
	t.Helper()
	var dep *time.Time
	if departure != "" {
		d := date(t, departure)
		dep = &d
	}
	w, err := reservation.NewStayWindow(date(t, arrival), dep)
	require.NoError(t, err)
	return reservation.Booking{RoomID: roomID, Window: w}
}

func query(t *testing.T, arrival, departure string) reservation.StayWindow {
	t.Helper()
	w, err := reservation.NewQueryWindow(date(t, arrival), date(t, departure))
	require.NoError(t, err)
	return w
}

func TestAvailableRooms(t *testing.T) {
	rooms := []testRoom{{ID: 1, Number: 101}, {ID: 2, Number: 102}, {ID: 3, Number: 201}}

	testCases := []struct {
		name     string
		bookings []reservation.Booking
		window   reservation.StayWindow
		expected []testRoom
	}{
		{
			name:     "no reservations returns every room",
			bookings: nil,
			window:   query(t, "2024-01-01", "2024-01-05"),
			expected: rooms,
		},
		{
			name: "non-overlapping reservations return every room",
			bookings: []reservation.Booking{
				booking(t, 1, "2023-12-01", "2023-12-10"),
				booking(t, 2, "2024-02-01", "2024-02-03"),
			},
			window:   query(t, "2024-01-01", "2024-01-05"),
			expected: rooms,
		},
		{
			name:     "overlapping stay excludes the room",
			bookings: []reservation.Booking{booking(t, 1, "2024-01-01", "2024-01-10")},
			window:   query(t, "2024-01-05", "2024-01-06"),
			expected: []testRoom{rooms[1], rooms[2]},
		},
		{
			name:     "window starting at departure includes the room",
			bookings: []reservation.Booking{booking(t, 1, "2024-01-01", "2024-01-10")},
			window:   query(t, "2024-01-10", "2024-01-12"),
			expected: rooms,
		},
		{
			name:     "window ending at arrival includes the room",
			bookings: []reservation.Booking{booking(t, 1, "2024-01-10", "2024-01-12")},
			window:   query(t, "2024-01-05", "2024-01-10"),
			expected: rooms,
		},
		{
			name:     "window enclosing the stay excludes the room",
			bookings: []reservation.Booking{booking(t, 2, "2024-01-03", "2024-01-04")},
			window:   query(t, "2024-01-01", "2024-01-31"),
			expected: []testRoom{rooms[0], rooms[2]},
		},
		{
			name:     "open-ended stay excludes the room long after arrival",
			bookings: []reservation.Booking{booking(t, 3, "2024-01-01", "")},
			window:   query(t, "2030-06-01", "2030-06-02"),
			expected: []testRoom{rooms[0], rooms[1]},
		},
		{
			name:     "open-ended stay does not block windows ending at its arrival",
			bookings: []reservation.Booking{booking(t, 3, "2024-01-10", "")},
			window:   query(t, "2024-01-01", "2024-01-10"),
			expected: rooms,
		},
		{
			name: "several bookings on one room exclude it once",
			bookings: []reservation.Booking{
				booking(t, 1, "2024-01-01", "2024-01-03"),
				booking(t, 1, "2024-01-03", "2024-01-06"),
			},
			window:   query(t, "2024-01-02", "2024-01-04"),
			expected: []testRoom{rooms[1], rooms[2]},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := reservation.AvailableRooms(rooms, roomID, tc.bookings, tc.window)

			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("AvailableRooms() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOccupiedRoomIDs(t *testing.T) {
	bookings := []reservation.Booking{
		booking(t, 7, "2024-03-01", "2024-03-05"),
		booking(t, 8, "2024-03-05", "2024-03-07"),
		booking(t, 9, "2024-02-01", ""),
	}

	actual := reservation.OccupiedRoomIDs(bookings, query(t, "2024-03-02", "2024-03-05"))

	expected := map[int64]struct{}{7: {}, 9: {}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("OccupiedRoomIDs() mismatch (-want +got):\n%s", diff)
	}
}
