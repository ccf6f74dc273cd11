package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func seedUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`,
		username, "irrelevant-hash").Scan(&id)
	require.NoError(t, err)
	return id
}

// seedSession inserts a session expiring ttl from now; a negative ttl makes
// an already-expired session.
func seedSession(t *testing.T, db *sql.DB, userID int64, token string, ttl time.Duration) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO sessions (token, user_id, expiry_timestamp) VALUES (?, ?, ?)`,
		token, userID, time.Now().Add(ttl).Unix())
	require.NoError(t, err)
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
