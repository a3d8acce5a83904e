//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	sharedmock "hotel-backend/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type mockDBTX struct {
	sqlc.DBTX
}

var errDBDown = errors.New("connection refused")

func notFoundErr() error {
	return infra.WrapRepoErr(slog.New(slog.NewTextHandler(io.Discard, nil)), infra.KindNotFound, "row missing", nil)
}

// newUoW returns a unit of work running every callback against db.
func newUoW(ctrl *gomock.Controller, db sqlc.DBTX) *sharedmock.MockUnitOfWork {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	run := func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
		return fn(ctx, db)
	}
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return uow
}
