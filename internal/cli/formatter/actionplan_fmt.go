package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/service"
)

const milestoneBarWidth = 10

// FormatActionPlan renders tasks grouped under their milestones, followed
// by the plan-wide figures.
func FormatActionPlan(ov *service.ActionPlanOverview) string {
	var b strings.Builder
	b.WriteString(FormatPlanHeading(ov.Plan) + "\n\n")

	milestones := make(map[string]domain.Milestone, len(ov.Milestones))
	for _, m := range ov.Milestones {
		milestones[m.ID] = m
	}

	var items []TreeItem
	for _, key := range ov.Tree.Keys {
		tasks, _ := ov.Tree.Lookup(key)
		if key == hierarchy.Unassigned {
			if len(tasks) == 0 {
				continue
			}
			items = append(items, TreeItem{Title: Bold("Unassigned"), Detail: fmt.Sprintf("%d tasks", len(tasks))})
		} else {
			m := milestones[key]
			heading := fmt.Sprintf("%s %s  %s", Dim(m.ID), Bold(m.Title), RenderProgress(m.Progress, milestoneBarWidth))
			if m.DueDate != "" {
				heading += "  " + DueLabel(m.DueDate, m.Status, ov.AsOf)
			}
			items = append(items, TreeItem{
				Title:  heading,
				Status: m.Status,
				Detail: fmt.Sprintf("%d/%d", m.CompletedTaskCount, m.TaskCount),
			})
		}
		for i, t := range tasks {
			items = append(items, TreeItem{
				Title:  taskLine(t, ov),
				Level:  1,
				IsLast: i == len(tasks)-1,
				Status: t.Status,
				Detail: taskDetail(t),
			})
		}
	}
	if len(items) == 0 {
		b.WriteString(Dim("No milestones or tasks yet.") + "\n")
	} else {
		b.WriteString(RenderTree(items))
	}

	s := ov.Stats
	b.WriteString("\n")
	fmt.Fprintf(&b, "Tasks %d/%d done (%d%%)", s.CompletedTasks, s.TotalTasks, s.CompletionRate)
	if s.InProgressTasks > 0 {
		b.WriteString(", " + StyleYellow.Render(fmt.Sprintf("%d in progress", s.InProgressTasks)))
	}
	if s.BlockedTasks > 0 {
		b.WriteString(", " + StyleRed.Render(fmt.Sprintf("%d blocked", s.BlockedTasks)))
	}
	if s.LateTasks > 0 {
		b.WriteString(", " + StyleRed.Render(fmt.Sprintf("%d late", s.LateTasks)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Milestones %d/%d complete, average progress %d%%\n",
		s.CompletedMilestones, s.TotalMilestones, s.AverageProgress)
	if s.EstimatedHours > 0 || s.ActualHours > 0 {
		b.WriteString(Dim(fmt.Sprintf("Hours %s estimated, %s spent", FormatHours(s.EstimatedHours), FormatHours(s.ActualHours))) + "\n")
	}

	return RenderBox("Action plan", b.String())
}

func taskLine(t domain.Task, ov *service.ActionPlanOverview) string {
	line := Dim(t.ID) + " " + t.Title
	if t.DueDate != "" {
		line += "  " + DueLabel(t.DueDate, t.Status, ov.AsOf)
	}
	return line
}

func taskDetail(t domain.Task) string {
	parts := []string{strings.ToLower(string(t.Priority))}
	if t.Assignee != "" {
		parts = append(parts, "@"+t.Assignee)
	}
	if done, total := t.SubTaskProgress(); total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d sub", done, total))
	}
	if len(t.Dependencies) > 0 {
		parts = append(parts, "after "+strings.Join(t.Dependencies, ","))
	}
	return strings.Join(parts, " ")
}
