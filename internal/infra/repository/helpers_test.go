//go:build unit

package repository_test

import (
	"io"
	"log/slog"

	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

type mockDBTX struct {
	sqlc.DBTX
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
