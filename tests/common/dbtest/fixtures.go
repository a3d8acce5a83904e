//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoom(t *testing.T, db DBLike, number int, roomType string, price float64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (number, type, price) VALUES ($1, $2, $3) RETURNING id",
		number, roomType, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestClient(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO clients (name, email) VALUES ($1, $2) RETURNING id",
		name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// departure may be empty for an open-ended stay.
func CreateTestReservation(t *testing.T, db DBLike, clientID, roomID int64, arrival, departure string) int64 {
	t.Helper()

	var dep any
	if departure != "" {
		dep = departure
	}

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservations (client_id, room_id, arrival, departure, status) VALUES ($1, $2, $3::date, $4::date, 'confirmed') RETURNING id",
		clientID, roomID, arrival, dep).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations, clients, rooms RESTART IDENTITY CASCADE")
	return err
}
