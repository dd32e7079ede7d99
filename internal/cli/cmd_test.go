package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/service"
	"github.com/alexanderramin/atelier/internal/swot"
	"github.com/alexanderramin/atelier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyPlanPath = "../importer/testdata/legacy_plan.json"

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	uow := testutil.NewTestUoW(testutil.NewTestDB(t))
	clock := func() time.Time { return testNow }
	ids := &adapter.SequenceIDs{}

	return &App{
		Plans:      service.NewPlanService(uow, clock),
		ActionPlan: service.NewActionPlanService(uow, clock, ids),
		Canvas:     service.NewCanvasService(uow, clock, ids),
		Market:     service.NewMarketService(uow, swot.NewSynthesizer(swot.DefaultConfig()), clock, ids),
		Risk:       service.NewRiskService(uow, clock, ids),
		Import:     service.NewImportService(uow, clock, ids),
	}
}

// importedApp returns an App holding the legacy sample plan WEB01.
func importedApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	_, err := app.Import.ImportPlan(context.Background(), legacyPlanPath)
	require.NoError(t, err)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- plan ---

func TestPlanAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "add", "--id", "web01", "--name", "Studio Web", "--owner", "Camille")
	require.NoError(t, err)
	assert.Contains(t, out, "Created plan Studio Web [WEB01]")

	out, err = executeCmd(t, app, "plan", "list", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "* WEB01")
	assert.Contains(t, out, "Studio Web")
	assert.Contains(t, out, "Camille")
}

func TestPlanAdd_RequiresFlags(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "add", "--id", "WEB01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestPlanAdd_RejectsBadShortID(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "add", "--id", "W1", "--name", "Studio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3-6 uppercase letters")
}

func TestPlanList_Empty(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No plans found.")
}

func TestPlanRename(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "plan", "rename", "web01", "Studio Nord")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed plan [WEB01] to Studio Nord")

	p, err := app.Plans.Get(context.Background(), "WEB01")
	require.NoError(t, err)
	assert.Equal(t, "Studio Nord", p.Name)
}

func TestPlanRemove_RequiresForceWhenPlanHoldsRecords(t *testing.T) {
	app := importedApp(t)

	_, err := executeCmd(t, app, "plan", "rm", "WEB01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	out, err := executeCmd(t, app, "plan", "rm", "WEB01", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed plan Freelance web studio [WEB01]")

	_, err = app.Plans.Get(context.Background(), "WEB01")
	assert.Error(t, err)
}

func TestPlanRemove_EmptyPlan(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Plans.Create(context.Background(), testutil.NewTestPlan("Empty", testutil.WithShortID("EMP01"))))

	_, err := executeCmd(t, app, "plan", "rm", "EMP01")
	require.NoError(t, err)
}

// --- import ---

func TestImportCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "import", legacyPlanPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Created plan Freelance web studio [WEB01]")
	assert.Contains(t, out, "tasks")

	out, err = executeCmd(t, app, "import", legacyPlanPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Merged into plan Freelance web studio [WEB01]")
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "import", "does-not-exist.json")
	assert.Error(t, err)
}

// --- action plan ---

func TestActionsCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "actions", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Launch offer")
	assert.Contains(t, out, "Write landing page")
	assert.Contains(t, out, "Open bank account")
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "Tasks 1/3 done (33%)")
}

func TestActionsCmd_UsesDefaultPlan(t *testing.T) {
	app := importedApp(t)
	app.DefaultPlan = "WEB01"

	out, err := executeCmd(t, app, "actions")
	require.NoError(t, err)
	assert.Contains(t, out, "Freelance web studio")
}

func TestActionsCmd_NoPlanSelected(t *testing.T) {
	_, err := executeCmd(t, importedApp(t), "actions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no plan selected")
}

func TestTaskStatusCmd_RollsUpMilestone(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "task", "status", "t2", "fait", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "t2 Pick pricing")
	assert.Contains(t, out, "Done")

	ov, err := app.ActionPlan.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	assert.Equal(t, 100.0, ov.Milestones[0].Progress)
}

func TestTaskStatusCmd_UnknownStatus(t *testing.T) {
	_, err := executeCmd(t, importedApp(t), "task", "status", "t2", "someday", "--plan", "WEB01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "someday"`)
	assert.Contains(t, err.Error(), "blocked, cancelled, done, in-progress, todo")
}

func TestTaskRemoveCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "task", "rm", "t1", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed task t1")

	ov, err := app.ActionPlan.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	require.Len(t, ov.Tasks, 2)
	assert.Empty(t, ov.Tasks[0].Dependencies)
}

func TestMilestoneCmds(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "milestone", "status", "m1", "done", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "m1 Launch offer")
	assert.Contains(t, out, "100%")

	_, err = executeCmd(t, app, "milestone", "rm", "m1", "--plan", "WEB01")
	require.NoError(t, err)

	ov, err := app.ActionPlan.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	require.Len(t, ov.Milestones, 1)
	unassigned, _ := ov.Tree.Lookup("unassigned")
	assert.Len(t, unassigned, 3)
}

// --- canvas, market, swot ---

func TestCanvasCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "canvas", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Fast delivery")
	assert.Contains(t, out, "Audit")
	assert.Contains(t, out, "Support")

	_, err = executeCmd(t, app, "canvas", "rm", "c1", "--plan", "WEB01")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "canvas", "pricing-rm", "p2", "--plan", "WEB01")
	require.NoError(t, err)

	ov, err := app.Canvas.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	assert.Empty(t, ov.Items)
	require.Len(t, ov.Pricing, 1)
	assert.Equal(t, "p1", ov.Pricing[0].ID)
}

func TestMarketCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "market", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Bakeries")
	assert.Contains(t, out, "BigAgency")
	assert.Contains(t, out, "Local SEO")
	assert.Contains(t, out, "No-code")

	out, err = executeCmd(t, app, "market", "rm", "competitors", "k1", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed competitors k1")

	_, err = executeCmd(t, app, "market", "rm", "partner", "x1", "--plan", "WEB01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown market record kind")
}

func TestSwotCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "swot", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "High-potential customer segment: Bakeries")
	assert.Contains(t, out, "Strong competitor: BigAgency")
	assert.Contains(t, out, "Competitor weakness (BigAgency): slow")
	assert.NotContains(t, out, "rigid")
}

// --- risk ---

func TestRiskCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "risk", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "late payment")
}

func TestIncidentResolveCmd(t *testing.T) {
	app := importedApp(t)

	out, err := executeCmd(t, app, "incident", "resolve", "rc1", "i1", "--plan", "WEB01")
	require.NoError(t, err)
	assert.Contains(t, out, "Resolved incident i1 of Acme (0 outstanding)")

	ov, err := app.Risk.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	assert.Equal(t, 100, ov.Stats.ResolutionRate)

	_, err = executeCmd(t, app, "incident", "resolve", "rc1", "i9", "--plan", "WEB01")
	assert.Error(t, err)
}

func TestRiskRemoveCmd(t *testing.T) {
	app := importedApp(t)

	_, err := executeCmd(t, app, "risk", "rm", "rc1", "--plan", "WEB01")
	require.NoError(t, err)

	ov, err := app.Risk.Overview(context.Background(), "WEB01")
	require.NoError(t, err)
	assert.Empty(t, ov.Clients)
	assert.Zero(t, ov.Stats.TotalClients)
}
