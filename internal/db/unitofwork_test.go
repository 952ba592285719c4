package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/streax/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func putDoc(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, '2026-03-10T09:00:00Z')`, key, value)
	return err
}

func storedKeys(t *testing.T, conn *sql.DB) []string {
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

func TestWithinTx_CommitsEveryDocument(t *testing.T) {
	conn := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(conn)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putDoc(ctx, tx, "STREAX_DATA", `{"version":1}`); err != nil {
			return err
		}
		return putDoc(ctx, tx, "STREAX_NOTIFICATIONS", `[]`)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"STREAX_DATA", "STREAX_NOTIFICATIONS"}, storedKeys(t, conn))
}

func TestWithinTx_ErrorDiscardsEarlierWrites(t *testing.T) {
	conn := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(conn)
	errSave := errors.New("saving notifications")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putDoc(ctx, tx, "STREAX_DATA", `{"version":1}`); err != nil {
			return err
		}
		return errSave
	})
	require.ErrorIs(t, err, errSave)
	assert.Empty(t, storedKeys(t, conn))
}

func TestWithinTx_PanicRollsBackAndPropagates(t *testing.T) {
	conn := openMemory(t)
	uow := db.NewSQLiteUnitOfWork(conn)

	assert.PanicsWithValue(t, "timer corrupted", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putDoc(ctx, tx, "STREAX_TIMER", `{}`)
			panic("timer corrupted")
		})
	})
	assert.Empty(t, storedKeys(t, conn))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow := db.NewSQLiteUnitOfWork(openMemory(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
