//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"hotel-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		attempt  int
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, attempt: 0, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, attempt: 2, expected: true},
		{name: "marked commit failure", err: errs.Mark(&pgconn.PgError{Code: "40001"}, errTransactionCommit), attempt: 1, expected: true},
		{name: "last attempt", err: &pgconn.PgError{Code: "40001"}, attempt: 3, expected: false},
		{name: "double booking is final", err: &pgconn.PgError{Code: "23P01"}, attempt: 0, expected: false},
		{name: "plain error", err: errors.New("boom"), attempt: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shouldRetry(tc.err, tc.attempt, 3))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base

		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
