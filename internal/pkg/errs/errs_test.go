//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")

	marked := errs.Mark(cause, errs.ErrRoomNumberTaken)

	assert.True(t, errs.Is(marked, errs.ErrRoomNumberTaken))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.ErrClientEmailTaken))

	assert.Equal(t, errs.ErrRoomNotFound, errs.Mark(nil, errs.ErrRoomNotFound))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	cause := errs.New("boom")
	wrapped := errs.Wrap(cause, "failed to create room")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "failed to create room: boom")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
}
