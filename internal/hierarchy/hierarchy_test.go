package hierarchy

import (
	"testing"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskParent(t domain.Task) string       { return t.MilestoneID }
func milestoneID(m domain.Milestone) string { return m.ID }

func TestBuild_TasksUnderMilestones(t *testing.T) {
	milestones := []domain.Milestone{{ID: "milestone-1"}, {ID: "milestone-2"}}
	tasks := []domain.Task{
		{ID: "t1", MilestoneID: "milestone-1"},
		{ID: "t2"},
		{ID: "t3", MilestoneID: "milestone-1"},
	}

	tree := Build(tasks, milestones, taskParent, milestoneID)

	assert.Equal(t, []string{"milestone-1", "milestone-2", Unassigned}, tree.Keys)
	got, ok := tree.Lookup("milestone-1")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t3", got[1].ID)

	got, ok = tree.Lookup("milestone-2")
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, ok = tree.Lookup(Unassigned)
	assert.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)

	assert.Equal(t, map[string]int{"milestone-1": 2, "milestone-2": 0, Unassigned: 1}, tree.Counts())
}

func TestBuild_DanglingReferenceIsUnassigned(t *testing.T) {
	tasks := []domain.Task{{ID: "t1", MilestoneID: "deleted"}}
	tree := Build(tasks, []domain.Milestone{{ID: "m1"}}, taskParent, milestoneID)

	got, _ := tree.Lookup(Unassigned)
	assert.Len(t, got, 1)
	_, ok := tree.Lookup("deleted")
	assert.False(t, ok)
}

func TestBuild_EmptyInputs(t *testing.T) {
	tree := Build[domain.Task, domain.Milestone](nil, nil, taskParent, milestoneID)

	assert.Equal(t, []string{Unassigned}, tree.Keys)
	got, ok := tree.Lookup(Unassigned)
	assert.True(t, ok)
	assert.Empty(t, got)
	assert.Zero(t, tree.Len())
}

func TestBuild_DuplicateAndEmptyParentIDs(t *testing.T) {
	milestones := []domain.Milestone{{ID: "m1"}, {ID: ""}, {ID: "m1"}}
	tasks := []domain.Task{{ID: "t1", MilestoneID: "m1"}, {ID: "t2", MilestoneID: ""}}

	tree := Build(tasks, milestones, taskParent, milestoneID)

	assert.Equal(t, []string{"m1", Unassigned}, tree.Keys)
	assert.Equal(t, 2, tree.Len())
}

func TestBuild_ReservedParentIDSharesUnassignedBucket(t *testing.T) {
	milestones := []domain.Milestone{{ID: Unassigned}, {ID: "p2"}}
	tasks := []domain.Task{{ID: "t1", MilestoneID: Unassigned}, {ID: "t2", MilestoneID: "p2"}}

	tree := Build(tasks, milestones, taskParent, milestoneID)

	assert.Equal(t, []string{"p2", Unassigned}, tree.Keys)
	got, ok := tree.Lookup(Unassigned)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, 2, tree.Len())
}
