//go:build unit

package repository_test

import (
	"context"
	"testing"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/infra/repository"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/tests/common/builder"
	repositorymock "hotel-backend/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create passes name and email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockClientWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewClientRepository(mockQueries, discardLogger())

		c, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().
			CreateClient(ctx, mockDB, sqlc.CreateClientParams{Name: "Martin", Email: "martin@example.com"}).
			Return(int64(5), nil)

		id, err := repo.Create(ctx, mockDB, c)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("Create reports a taken email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockClientWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewClientRepository(mockQueries, discardLogger())

		c, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)

		dup := &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintClientEmail}
		mockQueries.EXPECT().CreateClient(ctx, mockDB, gomock.Any()).Return(int64(0), dup)

		_, err = repo.Create(ctx, mockDB, c)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, infra.ConstraintClientEmail, infra.ConstraintOf(err))
	})

	t.Run("Delete", func(t *testing.T) {
		testCases := []struct {
			name       string
			affected   int64
			returnErr  error
			expectKind infra.RepositoryErrorKind
		}{
			{name: "deleted", affected: 1},
			{name: "missing", affected: 0, expectKind: infra.KindNotFound},
			{
				name:       "has reservations",
				returnErr:  &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintClientFK},
				expectKind: infra.KindForeignKeyViolated,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				mockQueries := repositorymock.NewMockClientWriteQueries(ctrl)
				mockDB := &mockDBTX{}
				repo := repository.NewClientRepository(mockQueries, discardLogger())
				mockQueries.EXPECT().DeleteClient(ctx, mockDB, int64(2)).Return(tc.affected, tc.returnErr)

				err := repo.Delete(ctx, mockDB, 2)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}
