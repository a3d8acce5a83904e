//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/infra/readstore"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/tests/common/builder"
	readstoremock "hotel-backend/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientReadStore(t *testing.T) {
	ctx := context.Background()
	b := builder.NewClientBuilder()

	t.Run("FindByID maps the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().GetClientByID(ctx, gomock.Any(), int64(1)).Return(b.BuildInfra(), nil)

		actual, err := store.FindByID(ctx, &mockDBTX{}, 1)
		require.NoError(t, err)
		assert.Equal(t, b.BuildView(), actual)
	})

	t.Run("FindByID reports a missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().GetClientByID(ctx, gomock.Any(), int64(1)).Return(sqlc.Clients{}, pgx.ErrNoRows)

		actual, err := store.FindByID(ctx, &mockDBTX{}, 1)
		require.Error(t, err)
		assert.Nil(t, actual)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindByEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().GetClientByEmail(ctx, gomock.Any(), "martin@example.com").Return(b.BuildInfra(), nil)
		mockQueries.EXPECT().GetClientByEmail(ctx, gomock.Any(), "nobody@example.com").Return(sqlc.Clients{}, pgx.ErrNoRows)

		actual, err := store.FindByEmail(ctx, &mockDBTX{}, "martin@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), actual.ID)

		_, err = store.FindByEmail(ctx, &mockDBTX{}, "nobody@example.com")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("List propagates database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockClientReadQueries(ctrl)
		store := readstore.NewClientReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().ListClients(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		actual, err := store.List(ctx, &mockDBTX{})
		assert.Nil(t, actual)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
