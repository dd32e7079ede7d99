package adapter

import (
	"math"
	"time"

	"github.com/alexanderramin/atelier/internal/codes"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
)

var Milestones = New("milestone", milestoneView, milestoneRecord)

var Tasks = New("task", taskView, taskRecord)

func milestoneView(n *Normalizer, r *record.Milestone) domain.Milestone {
	status := codes.ParseStatus(domain.StrFromPtrs(r.Status))
	if domain.BoolFromPtrWithDefault(false, r.IsCompleted, r.Completed) {
		status = domain.StatusCompleted
	}

	taskCount := domain.IntFromPtrWithDefault(0, r.TaskCount)
	doneCount := domain.IntFromPtrWithDefault(0, r.CompletedTaskCount)
	if doneCount > taskCount {
		doneCount = taskCount
	}

	var progress float64
	switch {
	case r.Progress != nil:
		progress = *r.Progress
	case status == domain.StatusCompleted:
		progress = 100
	case taskCount > 0:
		progress = math.Round(float64(doneCount) / float64(taskCount) * 100)
	}

	return domain.Milestone{
		ID:                 n.ID("milestone", r.ID),
		Title:              domain.StrFromPtrs(r.Title, r.Name),
		Description:        domain.StrFromPtrs(r.Description),
		Category:           codes.ParseMilestoneCategory(domain.StrFromPtrs(r.Category, r.Type)),
		Status:             status,
		Progress:           domain.ClampPct(progress),
		DueDate:            domain.StrFromPtrs(r.DueDate, r.TargetDate, r.Deadline),
		TaskCount:          taskCount,
		CompletedTaskCount: doneCount,
		CreatedAt:          domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:          domain.StrFromPtrs(r.UpdatedAt),
		View:               domain.NewView(),
	}
}

func milestoneRecord(v *domain.Milestone, now time.Time) record.Milestone {
	created, updated := stamps(v.CreatedAt, now)
	return record.Milestone{
		ID:                 v.ID,
		Title:              domain.Ptr(v.Title),
		Description:        domain.PtrIfNonEmpty(v.Description),
		Category:           domain.Ptr(codes.MilestoneCategoryCode(v.Category)),
		Status:             domain.Ptr(codes.StatusCode(v.Status)),
		IsCompleted:        domain.Ptr(v.Status == domain.StatusCompleted),
		Progress:           domain.Ptr(domain.ClampPct(v.Progress)),
		DueDate:            domain.PtrIfNonEmpty(v.DueDate),
		TaskCount:          domain.Ptr(v.TaskCount),
		CompletedTaskCount: domain.Ptr(v.CompletedTaskCount),
		CreatedAt:          created,
		UpdatedAt:          updated,
	}
}

func taskStatus(status *string, completed *bool) domain.Status {
	if status != nil && *status != "" {
		return codes.ParseStatus(*status)
	}
	if domain.BoolFromPtrWithDefault(false, completed) {
		return domain.StatusCompleted
	}
	return domain.StatusPending
}

func taskView(n *Normalizer, r *record.Task) domain.Task {
	subs := r.SubTasks
	if subs == nil {
		subs = r.LegacySubTasks
	}

	t := domain.Task{
		ID:             n.ID("task", r.ID),
		Title:          domain.StrFromPtrs(r.Title, r.Name),
		Description:    domain.StrFromPtrs(r.Description),
		Priority:       codes.ParsePriority(domain.StrFromPtrs(r.Priority)),
		Status:         taskStatus(r.Status, r.Completed),
		Assignee:       domain.StrFromPtrs(r.Assignee, r.AssignedTo),
		MilestoneID:    r.ParentKey(),
		DueDate:        domain.StrFromPtrs(r.DueDate, r.Deadline),
		EstimatedHours: math.Max(0, domain.Float64FromPtrWithDefault(0, r.EstimatedHours, r.EstimatedTime)),
		ActualHours:    math.Max(0, domain.Float64FromPtrWithDefault(0, r.ActualHours)),
		Dependencies:   domain.StringsOrEmpty(r.Dependencies, r.DependsOn),
		Tags:           domain.StringsOrEmpty(r.Tags, r.Labels),
		Comments:       make([]domain.Comment, 0, len(r.Comments)),
		SubTasks:       make([]domain.SubTask, 0, len(subs)),
		CreatedAt:      domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:      domain.StrFromPtrs(r.UpdatedAt),
		CompletedAt:    domain.StrFromPtrs(r.CompletedAt),
		View:           domain.NewView(),
	}
	for i := range r.Comments {
		t.Comments = append(t.Comments, commentView(n, &r.Comments[i]))
	}
	for i := range subs {
		t.SubTasks = append(t.SubTasks, subTaskView(n, &subs[i]))
	}
	return t
}

func taskRecord(v *domain.Task, now time.Time) record.Task {
	created, updated := stamps(v.CreatedAt, now)
	r := record.Task{
		ID:             v.ID,
		Title:          domain.Ptr(v.Title),
		Description:    domain.PtrIfNonEmpty(v.Description),
		Priority:       domain.Ptr(codes.PriorityCode(v.Priority)),
		Status:         domain.Ptr(codes.StatusCode(v.Status)),
		Assignee:       domain.PtrIfNonEmpty(v.Assignee),
		MilestoneID:    domain.PtrIfNonEmpty(v.MilestoneID),
		DueDate:        domain.PtrIfNonEmpty(v.DueDate),
		EstimatedHours: optFloat(v.EstimatedHours),
		ActualHours:    optFloat(v.ActualHours),
		Dependencies:   optStrings(v.Dependencies),
		Tags:           optStrings(v.Tags),
		CreatedAt:      created,
		UpdatedAt:      updated,
		CompletedAt:    domain.PtrIfNonEmpty(v.CompletedAt),
	}
	if v.Status != domain.StatusCompleted {
		r.CompletedAt = nil
	}
	for i := range v.Comments {
		r.Comments = append(r.Comments, commentRecord(&v.Comments[i]))
	}
	for i := range v.SubTasks {
		r.SubTasks = append(r.SubTasks, subTaskRecord(&v.SubTasks[i], now))
	}
	return r
}

func commentView(n *Normalizer, r *record.Comment) domain.Comment {
	return domain.Comment{
		ID:        n.ID("comment", r.ID),
		Author:    domain.StrFromPtrs(r.Author, r.User),
		Content:   domain.StrFromPtrs(r.Content, r.Text),
		CreatedAt: domain.StrFromPtrs(r.CreatedAt, r.Timestamp),
	}
}

func commentRecord(v *domain.Comment) record.Comment {
	return record.Comment{
		ID:        v.ID,
		Author:    domain.PtrIfNonEmpty(v.Author),
		Content:   domain.Ptr(v.Content),
		CreatedAt: domain.PtrIfNonEmpty(v.CreatedAt),
	}
}

func subTaskView(n *Normalizer, r *record.SubTask) domain.SubTask {
	return domain.SubTask{
		ID:        n.ID("subtask", r.ID),
		Title:     domain.StrFromPtrs(r.Title, r.Name),
		Status:    taskStatus(r.Status, r.Completed),
		Assignee:  domain.StrFromPtrs(r.Assignee),
		DueDate:   domain.StrFromPtrs(r.DueDate),
		CreatedAt: domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt: domain.StrFromPtrs(r.UpdatedAt),
	}
}

func subTaskRecord(v *domain.SubTask, now time.Time) record.SubTask {
	created, updated := stamps(v.CreatedAt, now)
	return record.SubTask{
		ID:        v.ID,
		Title:     domain.Ptr(v.Title),
		Status:    domain.Ptr(codes.StatusCode(v.Status)),
		Assignee:  domain.PtrIfNonEmpty(v.Assignee),
		DueDate:   domain.PtrIfNonEmpty(v.DueDate),
		CreatedAt: created,
		UpdatedAt: updated,
	}
}
