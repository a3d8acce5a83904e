//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/tests/common/builder"
	queriesmock "hotel-backend/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientQueries(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClientReadStore(ctrl)
		expected := []*queries.ClientView{builder.NewClientBuilder().BuildView()}
		store.EXPECT().List(gomock.Any(), db).Return(expected, nil)

		actual, err := queries.NewClientQueries(newUoW(ctrl, db), store).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClientReadStore(ctrl)
		expected := builder.NewClientBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), db, int64(1)).Return(expected, nil)

		actual, err := queries.NewClientQueries(newUoW(ctrl, db), store).GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClientReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), db, int64(9)).Return(nil, notFoundErr())

		_, err := queries.NewClientQueries(newUoW(ctrl, db), store).GetByID(ctx, 9)

		assert.True(t, errs.Is(err, errs.ErrClientNotFound))
	})

	t.Run("database failure is not remapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockClientReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), db, int64(9)).Return(nil, errDBDown)

		_, err := queries.NewClientQueries(newUoW(ctrl, db), store).GetByID(ctx, 9)

		require.ErrorIs(t, err, errDBDown)
		assert.False(t, errs.Is(err, errs.ErrClientNotFound))
	})
}
