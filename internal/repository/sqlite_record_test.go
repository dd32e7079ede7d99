package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/reconcile"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecords(t *testing.T) (*repository.SQLiteRecordRepo, string) {
	t.Helper()
	plan := testutil.NewTestPlan("Records")
	database, _ := testutil.NewTestStore(t, plan)
	return repository.NewSQLiteRecordRepo(database), plan.ID
}

func TestRecordRepo_RoundTripPreservesOrder(t *testing.T) {
	repo, planID := setupRecords(t)
	ctx := context.Background()

	tasks := []record.Task{
		testutil.NewTestTask("t3", "Third", testutil.WithMilestone("m1")),
		testutil.NewTestTask("t1", "First"),
		testutil.NewTestTask("t2", "Second", testutil.WithTaskStatus("done")),
	}
	require.NoError(t, repository.SaveCollection(ctx, repo, planID, record.CollectionTasks, tasks))

	loaded, err := repository.LoadCollection[record.Task](ctx, repo, planID, record.CollectionTasks)
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestRecordRepo_EmptyCollection(t *testing.T) {
	repo, planID := setupRecords(t)

	loaded, err := repository.LoadCollection[record.Trend](context.Background(), repo, planID, record.CollectionTrends)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestRecordRepo_ReplaceOverwrites(t *testing.T) {
	repo, planID := setupRecords(t)
	ctx := context.Background()

	base := []record.Milestone{testutil.NewTestMilestone("m1", "Launch"), testutil.NewTestMilestone("m2", "Grow")}
	require.NoError(t, repository.SaveCollection(ctx, repo, planID, record.CollectionMilestones, base))

	merged := reconcile.MergeByID(base, []record.Milestone{testutil.NewTestMilestone("m3", "Scale")})
	merged, _ = reconcile.Remove(merged, "m1")
	require.NoError(t, repository.SaveCollection(ctx, repo, planID, record.CollectionMilestones, merged))

	loaded, err := repository.LoadCollection[record.Milestone](ctx, repo, planID, record.CollectionMilestones)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "m2", loaded[0].ID)
	assert.Equal(t, "m3", loaded[1].ID)
}

func TestRecordRepo_CollectionsAreIsolated(t *testing.T) {
	repo, planID := setupRecords(t)
	ctx := context.Background()

	require.NoError(t, repository.SaveCollection(ctx, repo, planID, record.CollectionTasks, []record.Task{{ID: "x"}}))
	require.NoError(t, repository.SaveCollection(ctx, repo, planID, record.CollectionTrends, []record.Trend{{ID: "x"}}))

	counts, err := repo.Counts(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[record.CollectionTasks])
	assert.Equal(t, 1, counts[record.CollectionTrends])
	assert.Equal(t, 0, counts[record.CollectionRiskClients])
	assert.Len(t, counts, len(record.Collections))
}

func TestRecordRepo_RejectsMissingID(t *testing.T) {
	repo, planID := setupRecords(t)

	err := repository.SaveCollection(context.Background(), repo, planID, record.CollectionTasks, []record.Task{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestRecordRepo_FailedSaveRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plan := testutil.NewTestPlan("Rollback")
	require.NoError(t, repository.NewSQLitePlanRepo(database).Create(ctx, plan))

	original := []record.Task{{ID: "keep"}}
	require.NoError(t, repository.SaveCollection(ctx, repository.NewSQLiteRecordRepo(database), plan.ID, record.CollectionTasks, original))

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.SaveCollection(ctx, repository.NewSQLiteRecordRepo(tx), plan.ID, record.CollectionTasks, []record.Task{{ID: "a"}, {ID: "b"}})
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, uow.Execs())

	loaded, err := repository.LoadCollection[record.Task](ctx, repository.NewSQLiteRecordRepo(database), plan.ID, record.CollectionTasks)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
