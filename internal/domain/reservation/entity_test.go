//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-backend/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date is normalised to UTC midnight", func(t *testing.T) {
		d, err := reservation.ParseDate(" 2024-01-05 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)
	})

	for _, in := range []string{"", "2024/01/05", "05-01-2024", "2024-13-01", "2024-02-30", "tomorrow"} {
		t.Run("malformed "+in, func(t *testing.T) {
			_, err := reservation.ParseDate(in)
			require.ErrorIs(t, err, reservation.ErrMalformedDate)
		})
	}

	t.Run("optional date", func(t *testing.T) {
		d, err := reservation.ParseOptionalDate(nil)
		require.NoError(t, err)
		assert.Nil(t, d)

		empty := ""
		d, err = reservation.ParseOptionalDate(&empty)
		require.NoError(t, err)
		assert.Nil(t, d)

		bad := "2024-1-5x"
		_, err = reservation.ParseOptionalDate(&bad)
		require.ErrorIs(t, err, reservation.ErrMalformedDate)
	})
}

func TestStayWindow(t *testing.T) {
	jan := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("departure must follow arrival", func(t *testing.T) {
		_, err := reservation.NewStayWindow(jan(5), ptr(jan(5)))
		require.ErrorIs(t, err, reservation.ErrInvalidStayWindow)

		_, err = reservation.NewStayWindow(jan(5), ptr(jan(4)))
		require.ErrorIs(t, err, reservation.ErrInvalidStayWindow)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		w, err := reservation.NewStayWindow(jan(1).Add(15*time.Hour), ptr(jan(3).Add(9*time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, jan(1), w.Arrival())
		assert.Equal(t, jan(3), *w.Departure())
		assert.Equal(t, 2, w.Nights())
		assert.Equal(t, "[2024-01-01,2024-01-03)", w.String())
	})

	t.Run("open-ended window", func(t *testing.T) {
		w, err := reservation.NewStayWindow(jan(1), nil)
		require.NoError(t, err)
		assert.True(t, w.IsOpenEnded())
		assert.Nil(t, w.Departure())
		assert.Equal(t, -1, w.Nights())
		assert.Equal(t, "[2024-01-01,)", w.String())
	})

	t.Run("query window rejects reversed input only", func(t *testing.T) {
		_, err := reservation.NewQueryWindow(jan(6), jan(5))
		require.ErrorIs(t, err, reservation.ErrReversedWindow)

		_, err = reservation.NewQueryWindow(jan(5), jan(5))
		require.NoError(t, err)
	})

	t.Run("overlap uses half-open semantics", func(t *testing.T) {
		stay, err := reservation.NewStayWindow(jan(1), ptr(jan(10)))
		require.NoError(t, err)
		open, err := reservation.NewStayWindow(jan(20), nil)
		require.NoError(t, err)

		testCases := []struct {
			name     string
			stay     reservation.StayWindow
			from, to int
			overlaps bool
		}{
			{name: "inside", stay: stay, from: 5, to: 6, overlaps: true},
			{name: "straddles arrival", stay: stay, from: 1, to: 2, overlaps: true},
			{name: "straddles departure", stay: stay, from: 9, to: 11, overlaps: true},
			{name: "back-to-back after", stay: stay, from: 10, to: 12, overlaps: false},
			{name: "entirely after", stay: stay, from: 11, to: 12, overlaps: false},
			{name: "open-ended far after arrival", stay: open, from: 28, to: 31, overlaps: true},
			{name: "open-ended before arrival", stay: open, from: 15, to: 20, overlaps: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				q, err := reservation.NewQueryWindow(jan(tc.from), jan(tc.to))
				require.NoError(t, err)
				assert.Equal(t, tc.overlaps, tc.stay.Overlaps(q))
				assert.Equal(t, tc.overlaps, q.Overlaps(tc.stay), "overlap must be symmetric")
			})
		}
	})

	t.Run("back-to-back stays never overlap", func(t *testing.T) {
		first, err := reservation.NewStayWindow(jan(1), ptr(jan(5)))
		require.NoError(t, err)
		second, err := reservation.NewStayWindow(jan(5), ptr(jan(8)))
		require.NoError(t, err)

		assert.False(t, first.Overlaps(second))
		assert.False(t, second.Overlaps(first))
	})
}

func TestNewReservation(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	departure := arrival.AddDate(0, 0, 3)

	testCases := []struct {
		name     string
		clientID int64
		roomID   int64
		dep      *time.Time
		status   string
		errIs    error
	}{
		{name: "valid bounded stay", clientID: 1, roomID: 2, dep: &departure, status: "confirmed"},
		{name: "valid open-ended stay", clientID: 1, roomID: 2, status: "pending"},
		{name: "missing client", clientID: 0, roomID: 2, status: "confirmed", errIs: reservation.ErrInvalidClientID},
		{name: "missing room", clientID: 1, roomID: -1, status: "confirmed", errIs: reservation.ErrInvalidRoomID},
		{name: "blank status", clientID: 1, roomID: 2, status: "   ", errIs: reservation.ErrEmptyStatus},
		{name: "status too long", clientID: 1, roomID: 2, status: strings.Repeat("s", reservation.MaxStatusLength+1), errIs: reservation.ErrStatusTooLong},
		{name: "multibyte status at the limit", clientID: 1, roomID: 2, status: strings.Repeat("é", reservation.MaxStatusLength), dep: &departure},
		{name: "zero-length stay", clientID: 1, roomID: 2, dep: &arrival, status: "confirmed", errIs: reservation.ErrInvalidStayWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := reservation.NewReservation(tc.clientID, tc.roomID, arrival, tc.dep, tc.status)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				require.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.clientID, actual.ClientID())
			assert.Equal(t, tc.roomID, actual.RoomID())
			assert.Equal(t, arrival, actual.Window().Arrival())
			assert.Equal(t, tc.dep == nil, actual.Window().IsOpenEnded())
		})
	}
}
