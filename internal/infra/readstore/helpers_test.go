//go:build unit

package readstore_test

import (
	"errors"
	"io"
	"log/slog"

	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

var errDBConnectionLost = errors.New("database connection lost")

// the query mocks never touch the connection
type mockDBTX struct {
	sqlc.DBTX
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
