package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mountainflow/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putPref(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`, key, value)
	return err
}

func hasPref(t *testing.T, uow *db.SQLiteUnitOfWork, key string) bool {
	t.Helper()
	var found bool
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM preferences WHERE key = ?`, key).Scan(&n); err != nil {
			return err
		}
		found = n > 0
		return nil
	}))
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putPref(ctx, tx, "sportPlan", "{}"); err != nil {
			return err
		}
		return putPref(ctx, tx, "language", "{}")
	})
	require.NoError(t, err)

	assert.True(t, hasPref(t, uow, "sportPlan"))
	assert.True(t, hasPref(t, uow, "language"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putPref(ctx, tx, "painRecovery", "{}"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.False(t, hasPref(t, uow, "painRecovery"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putPref(ctx, tx, "morningRitual", "{}")
			panic("boom")
		})
	})

	assert.False(t, hasPref(t, uow, "morningRitual"), "row should not exist after panic rollback")
}
