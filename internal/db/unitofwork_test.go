package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/atelier/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO plans (id, short_id, name, created_at, updated_at) VALUES ('p1', 'SHOP01', 'Shop', 'x', 'x')`)
	require.NoError(t, err)
	return db.NewSQLiteUnitOfWork(database)
}

func insertTask(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO records (plan_id, collection, id, position, body, updated_at) VALUES ('p1', 'tasks', ?, 0, '{}', 'x')`, id)
	return err
}

func taskExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var n int
	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertTask(ctx, tx, "t1")
	})
	require.NoError(t, err)
	assert.True(t, taskExists(t, uow, "t1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertTask(ctx, tx, "t2"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, taskExists(t, uow, "t2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertTask(ctx, tx, "t3")
			panic("boom")
		})
	})
	assert.False(t, taskExists(t, uow, "t3"))
}

func TestWithinReadTx_DiscardsWrites(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertTask(ctx, tx, "t4")
	})
	require.NoError(t, err)
	assert.False(t, taskExists(t, uow, "t4"))
}
