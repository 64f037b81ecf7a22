//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"car-rental-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Catalog rows seeded by migrations/002_seed_catalog.sql.
const (
	ShopShinjuku int64 = 1
	ShopShibuya  int64 = 2
	ModelPrius   int64 = 1
	ModelAlphard int64 = 2
	PriusRate    int64 = 5000
	CarPrius1    int64 = 1
	CarPrius2    int64 = 2
	CarAlphard   int64 = 3
)

// TestPassword matches builder.TestPasswordHash.
const TestPassword = "password123"

// CreateTestUser inserts a user whose password is TestPassword, or returns the existing id.
func CreateTestUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, password_hash, email, address) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (username) DO NOTHING",
		userID, username, builder.TestPasswordHash, username+"@example.com", "1-1 Chiyoda, Tokyo")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestReservation books carID directly, bypassing the search session.
func CreateTestReservation(t *testing.T, db DBLike, userID uuid.UUID, carID, shopID int64, start, end time.Time, price int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, user_id, car_id, shop_id, start_date, end_date, price, status, create_user, update_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'confirmed', 'user', 'user')`,
		id, userID, carID, shopID, start, end, price)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike, carID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE car_id = $1", carID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountQueuedJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = 'queued'", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB clears per-test rows and keeps the seeded catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE notification_jobs, reservations, users CASCADE")
	return err
}
