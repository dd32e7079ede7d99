// Package stats computes the aggregate figures shown on each dashboard.
//
// Every function is pure: collections and the reference time come in as
// arguments and nothing is read from the clock.
package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
)

// Rate returns part/total as a rounded percentage in [0, 100]. A zero or
// negative total yields 0.
func Rate(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	r := int(math.Round(float64(part) / float64(total) * 100))
	if r > 100 {
		return 100
	}
	return r
}

type ActionPlanStats struct {
	TotalMilestones         int
	CompletedMilestones     int
	LateMilestones          int
	MilestoneCompletionRate int
	AverageProgress         int
	MilestonesByCategory    map[domain.MilestoneCategory]int

	TotalTasks      int
	CompletedTasks  int
	InProgressTasks int
	BlockedTasks    int
	LateTasks       int
	CompletionRate  int
	TasksByStatus   map[domain.Status]int
	TasksByPriority map[domain.Priority]int
	EstimatedHours  float64
	ActualHours     float64
}

// ActionPlan aggregates milestones and tasks. CompletionRate is over tasks.
func ActionPlan(milestones []domain.Milestone, tasks []domain.Task, now time.Time) ActionPlanStats {
	s := ActionPlanStats{
		TotalMilestones:      len(milestones),
		TotalTasks:           len(tasks),
		MilestonesByCategory: map[domain.MilestoneCategory]int{},
		TasksByStatus:        map[domain.Status]int{},
		TasksByPriority:      map[domain.Priority]int{},
	}

	var progress float64
	for i := range milestones {
		m := &milestones[i]
		s.MilestonesByCategory[m.Category]++
		progress += m.Progress
		if m.IsCompleted() {
			s.CompletedMilestones++
		}
		if m.IsLate(now) {
			s.LateMilestones++
		}
	}
	if len(milestones) > 0 {
		s.AverageProgress = int(math.Round(domain.ClampPct(progress / float64(len(milestones)))))
	}

	for i := range tasks {
		t := &tasks[i]
		s.TasksByStatus[t.Status]++
		s.TasksByPriority[t.Priority]++
		s.EstimatedHours += t.EstimatedHours
		s.ActualHours += t.ActualHours
		switch t.Status {
		case domain.StatusCompleted:
			s.CompletedTasks++
		case domain.StatusInProgress:
			s.InProgressTasks++
		case domain.StatusBlocked:
			s.BlockedTasks++
		}
		if t.IsLate(now) {
			s.LateTasks++
		}
	}

	s.CompletionRate = Rate(s.CompletedTasks, s.TotalTasks)
	s.MilestoneCompletionRate = Rate(s.CompletedMilestones, s.TotalMilestones)
	return s
}

// MilestoneProgress returns the rounded share of completed tasks per
// milestone id, for milestones that have at least one task.
func MilestoneProgress(tasks []domain.Task) map[string]int {
	total := map[string]int{}
	done := map[string]int{}
	for i := range tasks {
		id := tasks[i].MilestoneID
		if id == "" {
			continue
		}
		total[id]++
		if tasks[i].IsCompleted() {
			done[id]++
		}
	}
	out := make(map[string]int, len(total))
	for id, n := range total {
		out[id] = Rate(done[id], n)
	}
	return out
}

// RollUp returns copies of milestones with task counts and progress derived
// from tasks. Completed milestones stay at 100; milestones without tasks keep
// their stored progress.
func RollUp(milestones []domain.Milestone, tasks []domain.Task) []domain.Milestone {
	total := map[string]int{}
	done := map[string]int{}
	for i := range tasks {
		id := tasks[i].MilestoneID
		if id == "" {
			continue
		}
		total[id]++
		if tasks[i].IsCompleted() {
			done[id]++
		}
	}

	out := make([]domain.Milestone, len(milestones))
	copy(out, milestones)
	for i := range out {
		m := &out[i]
		m.TaskCount = total[m.ID]
		m.CompletedTaskCount = done[m.ID]
		switch {
		case m.IsCompleted():
			m.Progress = 100
		case m.TaskCount > 0:
			m.Progress = float64(Rate(m.CompletedTaskCount, m.TaskCount))
		}
	}
	return out
}
