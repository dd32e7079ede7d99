package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/importer"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyPlanPath = "../importer/testdata/legacy_plan.json"

func TestImportService_CreatesPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	recorder := &UseCaseRecorder{}
	svc := NewImportService(uow, fixedClock, &adapter.SequenceIDs{}, recorder)
	ctx := context.Background()

	result, err := svc.ImportPlan(ctx, legacyPlanPath)
	require.NoError(t, err)
	assert.False(t, result.Merged)
	assert.Equal(t, "WEB01", result.Plan.ShortID)
	assert.Equal(t, "Freelance web studio", result.Plan.Name)
	assert.Equal(t, "EUR", result.Plan.Currency)
	assert.Equal(t, 3, result.Counts[record.CollectionTasks])
	assert.Equal(t, 2, result.Counts[record.CollectionPricing])
	assert.Equal(t, 1, result.Counts[record.CollectionRiskClients])

	ov, err := NewActionPlanService(uow, fixedClock, nil).Overview(ctx, "web01")
	require.NoError(t, err)
	require.Len(t, ov.Tasks, 3)
	assert.Equal(t, "task-1", ov.Tasks[2].ID)
	assert.Equal(t, domain.PriorityUrgent, ov.Tasks[2].Priority)
	assert.Equal(t, domain.StatusInProgress, ov.Tasks[1].Status)
	assert.Equal(t, 2, ov.Milestones[0].TaskCount)
	assert.Equal(t, 50.0, ov.Milestones[0].Progress)
	assert.Equal(t, 100.0, ov.Milestones[1].Progress)

	risk, err := NewRiskService(uow, fixedClock, nil).Overview(ctx, "WEB01")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskCritical, risk.Clients[0].RiskLevel)
	assert.Equal(t, domain.IncidentLatePayment, risk.Clients[0].Incidents[0].Type)

	ev, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "import-plan", ev.Name)
	assert.Equal(t, false, ev.Fields["merged"])
}

func TestImportService_MergesIntoExistingPlan(t *testing.T) {
	env := newTestEnv(t)
	seed(t, env, record.CollectionTasks,
		testutil.NewTestTask("t1", "Old title"),
		testutil.NewTestTask("t9", "Keep me"),
	)
	svc := NewImportService(env.uow, fixedClock, env.ids, env.recorder)

	result, err := svc.ImportPlan(context.Background(), legacyPlanPath)
	require.NoError(t, err)
	assert.True(t, result.Merged)
	assert.Equal(t, env.plan.ID, result.Plan.ID)

	plan := storedPlan(t, env)
	assert.Equal(t, "Freelance web studio", plan.Name)
	assert.Equal(t, "Camille", plan.Owner)
	assert.True(t, plan.UpdatedAt.Equal(testNow))

	tasks := stored[record.Task](t, env, record.CollectionTasks)
	assert.Equal(t, []string{"t1", "t9", "t2", "task-1"}, keysOf(tasks))
	assert.Equal(t, "Write landing page", *tasks[0].Title)
	assert.Equal(t, "Keep me", *tasks[1].Title)

	ev, ok := env.recorder.Last()
	require.True(t, ok)
	assert.Equal(t, true, ev.Fields["merged"])
}

func TestImportService_ValidationFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database), fixedClock, &adapter.SequenceIDs{})

	f := &importer.PlanFile{
		Plan: importer.PlanHeader{ShortID: "ABC01", Name: "Dup"},
		Tasks: []record.Task{
			testutil.NewTestTask("t1", "One"),
			testutil.NewTestTask("t1", "Two"),
		},
	}
	_, err := svc.ImportPlanFromFile(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (1 errors)")
	assert.Contains(t, err.Error(), `tasks[1].id: duplicate id "t1"`)

	plans, err := repository.NewSQLitePlanRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestImportService_SchemaFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"plan": {"shortId": "ABC01"}}`), 0o644))

	svc := NewImportService(testutil.NewTestUoW(testutil.NewTestDB(t)), fixedClock, nil)
	_, err := svc.ImportPlan(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
	assert.Contains(t, err.Error(), "does not match schema")

	_, err = svc.ImportPlan(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestImportService_FailedWriteLeavesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 5, Err: errors.New("disk full")}
	svc := NewImportService(uow, fixedClock, &adapter.SequenceIDs{})

	_, err := svc.ImportPlan(context.Background(), legacyPlanPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	plans, err := repository.NewSQLitePlanRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}
