package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/streax/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory database closed at test cleanup.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory tracker database")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}

// DocumentKeys lists the kv_store keys currently persisted.
func DocumentKeys(t testing.TB, conn *sql.DB) []string {
	t.Helper()
	rows, err := conn.Query(`SELECT key FROM kv_store ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	require.NoError(t, rows.Err())
	return keys
}
