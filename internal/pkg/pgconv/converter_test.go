//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"hotel-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "whole", in: 100, expected: 100},
		{name: "cents", in: 149.99, expected: 149.99},
		{name: "half", in: 80.5, expected: 80.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := pgconv.Float64ToNumeric(tc.in)
			require.NoError(t, err)

			actual, err := pgconv.Float64FromNumeric(n)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, actual, 0.0001)
		})
	}

	_, err := pgconv.Float64FromNumeric(pgtype.Numeric{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidFloat64Value)
}

func TestDateConversions(t *testing.T) {
	local := time.Date(2024, 1, 5, 23, 30, 0, 0, time.FixedZone("JST", 9*3600))

	pd := pgconv.DateToPgtype(local)
	require.True(t, pd.Valid)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{}))

	back := pgconv.DatePtrFromPgtype(pd)
	require.NotNil(t, back)
	assert.Equal(t, 5, back.Day())
}

func TestInt32FromInt(t *testing.T) {
	v, err := pgconv.Int32FromInt(101)
	require.NoError(t, err)
	assert.Equal(t, int32(101), v)

	_, err = pgconv.Int32FromInt(1 << 40)
	assert.ErrorIs(t, err, pgconv.ErrIntOutOfRange)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
