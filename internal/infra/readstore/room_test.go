//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/infra/readstore"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/tests/common/builder"
	readstoremock "hotel-backend/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.ID = 7
		b.Price = 149.99
	}).BuildInfra()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockRoomReadQueries)
		expected   *queries.RoomView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: room found",
			setupMock: func(m *readstoremock.MockRoomReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), int64(7)).Return(row, nil)
			},
			expected: &queries.RoomView{ID: 7, Number: 101, Type: "Simple", Price: 149.99},
		},
		{
			name: "error: room not found",
			setupMock: func(m *readstoremock.MockRoomReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), int64(7)).Return(sqlc.Rooms{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockRoomReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), int64(7)).Return(sqlc.Rooms{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unreadable price",
			setupMock: func(m *readstoremock.MockRoomReadQueries) {
				broken := row
				broken.Price = pgtype.Numeric{}
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), int64(7)).Return(broken, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
			store := readstore.NewRoomReadStore(mockQueries, discardLogger())
			tc.setupMock(mockQueries)

			actual, err := store.FindByID(ctx, &mockDBTX{}, 7)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("FindByID() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoomReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps every row in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
		store := readstore.NewRoomReadStore(mockQueries, discardLogger())

		rows := []sqlc.Rooms{
			builder.NewRoomBuilder().BuildInfra(),
			builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
				b.ID, b.Number, b.Type, b.Price = 2, 201, "Suite", 320.5
			}).BuildInfra(),
		}
		mockQueries.EXPECT().ListRooms(ctx, gomock.Any()).Return(rows, nil)

		actual, err := store.List(ctx, &mockDBTX{})
		require.NoError(t, err)

		expected := []*queries.RoomView{
			{ID: 1, Number: 101, Type: "Simple", Price: 100},
			{ID: 2, Number: 201, Type: "Suite", Price: 320.5},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty table yields an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
		store := readstore.NewRoomReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().ListRooms(ctx, gomock.Any()).Return(nil, nil)

		actual, err := store.List(ctx, &mockDBTX{})
		require.NoError(t, err)
		assert.NotNil(t, actual)
		assert.Empty(t, actual)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
		store := readstore.NewRoomReadStore(mockQueries, discardLogger())
		mockQueries.EXPECT().ListRooms(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.List(ctx, &mockDBTX{})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomReadStore_FindByNumber(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	store := readstore.NewRoomReadStore(mockQueries, discardLogger())

	mockQueries.EXPECT().GetRoomByNumber(ctx, gomock.Any(), int32(101)).Return(builder.NewRoomBuilder().BuildInfra(), nil)
	mockQueries.EXPECT().GetRoomByNumber(ctx, gomock.Any(), int32(102)).Return(sqlc.Rooms{}, pgx.ErrNoRows)

	found, err := store.FindByNumber(ctx, &mockDBTX{}, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)

	_, err = store.FindByNumber(ctx, &mockDBTX{}, 102)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
