package pgconv

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")
	ErrIntOutOfRange       = errors.New("integer value out of int32 range")
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// DateFromPgtype returns the calendar day at UTC midnight.
func DateFromPgtype(pd pgtype.Date) time.Time {
	t := pd.Time
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DatePtrFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	d := DateFromPgtype(pd)
	return &d
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*t)
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, ErrInvalidFloat64Value
	}

	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return 0, ErrInvalidFloat64Value
	}

	return value.Float64, nil
}

// Float64ToNumeric keeps two decimal places to match NUMERIC(10,2) columns.
func Float64ToNumeric(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', 2, 64)); err != nil {
		return pgtype.Numeric{}, err
	}
	return n, nil
}

func Int32FromInt(i int) (int32, error) {
	if i < -1<<31 || i > 1<<31-1 {
		return 0, ErrIntOutOfRange
	}
	return int32(i), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
