package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	plan     *domain.Plan
	recorder *UseCaseRecorder
	ids      *adapter.SequenceIDs
}

// newTestEnv opens an in-memory store holding one plan, WEB01.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	plan := testutil.NewTestPlan("Studio Web", testutil.WithShortID("WEB01"),
		testutil.WithCreatedAt(testNow.Add(-24*time.Hour)))
	database, uow := testutil.NewTestStore(t, plan)
	return &testEnv{
		db:       database,
		uow:      uow,
		plan:     plan,
		recorder: &UseCaseRecorder{},
		ids:      &adapter.SequenceIDs{},
	}
}

func seed[T record.Keyed](t *testing.T, env *testEnv, c record.Collection, items ...T) {
	t.Helper()
	recs := repository.NewSQLiteRecordRepo(env.db)
	require.NoError(t, repository.SaveCollection(context.Background(), recs, env.plan.ID, c, items))
}

func stored[T any](t *testing.T, env *testEnv, c record.Collection) []T {
	t.Helper()
	recs := repository.NewSQLiteRecordRepo(env.db)
	out, err := repository.LoadCollection[T](context.Background(), recs, env.plan.ID, c)
	require.NoError(t, err)
	return out
}

func storedPlan(t *testing.T, env *testEnv) *domain.Plan {
	t.Helper()
	p, err := repository.NewSQLitePlanRepo(env.db).GetByID(context.Background(), env.plan.ID)
	require.NoError(t, err)
	return p
}

func keysOf[T record.Keyed](rs []T) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Key())
	}
	return out
}
