package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestIsLate(t *testing.T) {
	cases := []struct {
		name   string
		due    string
		status Status
		late   bool
	}{
		{"past date pending", "2025-06-01", StatusPending, true},
		{"past timestamp in progress", "2025-06-15T09:00:00Z", StatusInProgress, true},
		{"past but completed", "2025-06-01", StatusCompleted, false},
		{"past but cancelled", "2025-06-01", StatusCancelled, true},
		{"future", "2025-07-01", StatusPending, false},
		{"exactly now", "2025-06-15T10:00:00Z", StatusPending, false},
		{"empty", "", StatusPending, false},
		{"garbage", "next tuesday", StatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.late, IsLate(tc.due, tc.status, testNow))
		})
	}
}

func TestTaskSetStatus_StampsCompletedAt(t *testing.T) {
	task := &Task{Status: StatusInProgress}
	task.SetStatus(StatusCompleted, testNow)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.Equal(t, "2025-06-15T10:00:00Z", task.CompletedAt)
}

func TestTaskSetStatus_ReopenClearsCompletedAt(t *testing.T) {
	task := &Task{Status: StatusCompleted, CompletedAt: "2025-06-01T00:00:00Z"}
	task.SetStatus(StatusPending, testNow)
	assert.Equal(t, StatusPending, task.Status)
	assert.Empty(t, task.CompletedAt)
}

func TestTaskSetStatus_SameStatusKeepsTimestamp(t *testing.T) {
	task := &Task{Status: StatusCompleted, CompletedAt: "2025-06-01T00:00:00Z"}
	task.SetStatus(StatusCompleted, testNow)
	assert.Equal(t, "2025-06-01T00:00:00Z", task.CompletedAt, "should not overwrite existing CompletedAt")
}

func TestTaskSubTaskProgress(t *testing.T) {
	task := &Task{SubTasks: []SubTask{
		{Status: StatusCompleted},
		{Status: StatusPending},
		{Status: StatusCompleted},
	}}
	done, total := task.SubTaskProgress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}

func TestTaskValidate(t *testing.T) {
	task := &Task{ID: "t1", DueDate: "soon", EstimatedHours: -1, Dependencies: []string{"t1"}}
	assert.False(t, task.Validate())
	require.NotNil(t, task.ValidationErrors)
	assert.Contains(t, task.ValidationErrors, "title")
	assert.Contains(t, task.ValidationErrors, "dueDate")
	assert.Contains(t, task.ValidationErrors, "estimatedHours")
	assert.Contains(t, task.ValidationErrors, "dependencies")

	task = &Task{ID: "t1", Title: "Write offer", DueDate: "2025-07-01"}
	assert.True(t, task.Validate())
	assert.Empty(t, task.ValidationErrors)
}

func TestMilestoneValidate(t *testing.T) {
	m := &Milestone{Progress: 140}
	assert.False(t, m.Validate())
	assert.Contains(t, m.ValidationErrors, "title")
	assert.Contains(t, m.ValidationErrors, "progress")
}

func TestRiskClientOutstandingAndResolve(t *testing.T) {
	c := &RiskClient{Incidents: []Incident{
		{ID: "i1", Amount: 1200},
		{ID: "i2", Amount: 300, Resolved: true},
		{ID: "i3", Amount: 50},
	}}
	assert.Equal(t, 1250.0, c.OutstandingAmount())

	assert.True(t, c.ResolveIncident("i1", testNow))
	assert.Equal(t, 50.0, c.OutstandingAmount())
	assert.Equal(t, "2025-06-15T10:00:00Z", c.Incidents[0].ResolvedAt)

	assert.False(t, c.ResolveIncident("missing", testNow))
}

func TestIncidentIsOverdue(t *testing.T) {
	inc := &Incident{DueDate: "2025-06-01"}
	assert.True(t, inc.IsOverdue(testNow))
	inc.Resolved = true
	assert.False(t, inc.IsOverdue(testNow))
}

func TestPricingEffectiveHourlyRate(t *testing.T) {
	assert.Equal(t, 80.0, (&PricingEntry{Kind: PricingHourly, HourlyRate: 80}).EffectiveHourlyRate())
	assert.Equal(t, 50.0, (&PricingEntry{Kind: PricingPackage, Price: 1000, Hours: 20}).EffectiveHourlyRate())
	assert.Equal(t, 0.0, (&PricingEntry{Kind: PricingPackage, Price: 1000}).EffectiveHourlyRate())
	assert.Equal(t, 0.0, (&PricingEntry{Kind: PricingSubscription, Price: 99}).EffectiveHourlyRate())
}

func TestPricingValidate(t *testing.T) {
	p := &PricingEntry{Kind: PricingCustom, Name: "Audit", MinPrice: 900, MaxPrice: 500}
	assert.False(t, p.Validate())
	assert.Contains(t, p.ValidationErrors, "maxPrice")
}

func TestCoalesceHelpers(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", StrFromPtrs(nil, Ptr("")))
	assert.Equal(t, "x", StrFromPtrs(nil, Ptr(""), Ptr("x")))
	assert.Equal(t, 7, IntFromPtrWithDefault(3, nil, Ptr(7)))
	assert.Equal(t, []string{"a"}, StringsOrEmpty(nil, []string{"", "a"}))
	assert.NotNil(t, StringsOrEmpty())
	assert.Equal(t, 100.0, ClampPct(120))
	assert.Equal(t, 0.0, ClampPct(-3))
	assert.Nil(t, PtrIfNonEmpty(""))
}
