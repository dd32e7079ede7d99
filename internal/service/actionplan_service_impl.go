package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/stats"
)

type actionPlanService struct {
	core
}

func NewActionPlanService(uow db.UnitOfWork, clock Clock, ids adapter.IDGenerator, observers ...UseCaseObserver) ActionPlanService {
	return &actionPlanService{core: newCore(uow, clock, ids, observers)}
}

func (s *actionPlanService) Overview(ctx context.Context, planRef string) (*ActionPlanOverview, error) {
	now := s.now()
	var ov *ActionPlanOverview
	err := s.planReadTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		milestones, err := loadViews(ctx, recs, plan.ID, record.CollectionMilestones, adapter.Milestones, s.norm)
		if err != nil {
			return err
		}
		tasks, err := loadViews(ctx, recs, plan.ID, record.CollectionTasks, adapter.Tasks, s.norm)
		if err != nil {
			return err
		}
		ov = buildActionPlanOverview(plan, milestones, tasks, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

func buildActionPlanOverview(plan *domain.Plan, milestones []domain.Milestone, tasks []domain.Task, now time.Time) *ActionPlanOverview {
	milestones = stats.RollUp(milestones, tasks)
	return &ActionPlanOverview{
		Plan:       plan,
		Milestones: milestones,
		Tasks:      tasks,
		Tree: hierarchy.Build(tasks, milestones,
			func(t domain.Task) string { return t.MilestoneID },
			func(m domain.Milestone) string { return m.ID },
		),
		Stats: stats.ActionPlan(milestones, tasks, now),
		AsOf:  now,
	}
}

func (s *actionPlanService) SaveMilestones(ctx context.Context, planRef string, changes []domain.Milestone) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, "save-milestones", startedAt, fields, &err)

	for i := range changes {
		if !changes[i].Validate() {
			return invalidView("milestone", changes[i].ID, changes[i].ValidationErrors)
		}
	}
	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		if err := mergeViews(ctx, recs, plan.ID, record.CollectionMilestones, adapter.Milestones, s.norm, changes, now); err != nil {
			return err
		}
		return syncMilestones(ctx, recs, plan.ID, s.norm, now)
	})
}

func (s *actionPlanService) SaveTasks(ctx context.Context, planRef string, changes []domain.Task) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, "save-tasks", startedAt, fields, &err)

	for i := range changes {
		if !changes[i].Validate() {
			return invalidView("task", changes[i].ID, changes[i].ValidationErrors)
		}
	}
	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		if err := mergeViews(ctx, recs, plan.ID, record.CollectionTasks, adapter.Tasks, s.norm, changes, now); err != nil {
			return err
		}
		return syncMilestones(ctx, recs, plan.ID, s.norm, now)
	})
}

func (s *actionPlanService) SetTaskStatus(ctx context.Context, planRef, taskID string, status domain.Status) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "task_id": taskID, "status": string(status)}
	defer s.observe(ctx, "set-task-status", startedAt, fields, &err)

	now := s.now()
	err = s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		t, err := updateView(ctx, recs, plan.ID, record.CollectionTasks, adapter.Tasks, s.norm, taskID, now,
			func(t *domain.Task) error {
				t.SetStatus(status, now)
				return nil
			})
		if err != nil {
			return err
		}
		task = &t
		return syncMilestones(ctx, recs, plan.ID, s.norm, now)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and drops it from the dependency lists of the
// remaining tasks.
func (s *actionPlanService) DeleteTask(ctx context.Context, planRef, taskID string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "task_id": taskID}
	defer s.observe(ctx, "delete-task", startedAt, fields, &err)

	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		if err := removeRecord[record.Task](ctx, recs, plan.ID, record.CollectionTasks, taskID); err != nil {
			return err
		}

		base, err := repository.LoadCollection[record.Task](ctx, recs, plan.ID, record.CollectionTasks)
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		changed := false
		for i := range base {
			t := adapter.Tasks.Normalize(s.norm, &base[i])
			if !slices.Contains(t.Dependencies, taskID) {
				continue
			}
			t.Dependencies = slices.DeleteFunc(t.Dependencies, func(d string) bool { return d == taskID })
			base[i] = adapter.Tasks.Serialize(t, now)
			changed = true
		}
		if changed {
			if err := repository.SaveCollection(ctx, recs, plan.ID, record.CollectionTasks, base); err != nil {
				return fmt.Errorf("saving tasks: %w", err)
			}
		}
		return syncMilestones(ctx, recs, plan.ID, s.norm, now)
	})
}

func (s *actionPlanService) SetMilestoneStatus(ctx context.Context, planRef, milestoneID string, status domain.Status) (milestone *domain.Milestone, err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "milestone_id": milestoneID, "status": string(status)}
	defer s.observe(ctx, "set-milestone-status", startedAt, fields, &err)

	now := s.now()
	err = s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		_, err := updateView(ctx, recs, plan.ID, record.CollectionMilestones, adapter.Milestones, s.norm, milestoneID, now,
			func(m *domain.Milestone) error {
				m.Status = status
				if status == domain.StatusCompleted {
					m.Progress = 100
				}
				return nil
			})
		if err != nil {
			return err
		}
		if err := syncMilestones(ctx, recs, plan.ID, s.norm, now); err != nil {
			return err
		}

		base, err := repository.LoadCollection[record.Milestone](ctx, recs, plan.ID, record.CollectionMilestones)
		if err != nil {
			return fmt.Errorf("loading milestones: %w", err)
		}
		for i := range base {
			if base[i].ID == milestoneID {
				m := adapter.Milestones.Normalize(s.norm, &base[i])
				milestone = &m
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return milestone, nil
}

// DeleteMilestone removes the milestone. Its tasks stay and move to the
// unassigned bucket.
func (s *actionPlanService) DeleteMilestone(ctx context.Context, planRef, milestoneID string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "milestone_id": milestoneID}
	defer s.observe(ctx, "delete-milestone", startedAt, fields, &err)

	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		if err := removeRecord[record.Milestone](ctx, recs, plan.ID, record.CollectionMilestones, milestoneID); err != nil {
			return err
		}

		base, err := repository.LoadCollection[record.Task](ctx, recs, plan.ID, record.CollectionTasks)
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		orphaned := 0
		for i := range base {
			if base[i].ParentKey() != milestoneID {
				continue
			}
			t := adapter.Tasks.Normalize(s.norm, &base[i])
			t.MilestoneID = ""
			base[i] = adapter.Tasks.Serialize(t, now)
			orphaned++
		}
		fields["orphaned_tasks"] = orphaned
		if orphaned == 0 {
			return nil
		}
		if err := repository.SaveCollection(ctx, recs, plan.ID, record.CollectionTasks, base); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		return nil
	})
}

// syncMilestones rewrites the stored task counts and progress of the
// milestones whose figures no longer match their tasks.
func syncMilestones(ctx context.Context, recs repository.RecordRepo, planID string, n *adapter.Normalizer, now time.Time) error {
	tasks, err := loadViews(ctx, recs, planID, record.CollectionTasks, adapter.Tasks, n)
	if err != nil {
		return err
	}
	base, err := repository.LoadCollection[record.Milestone](ctx, recs, planID, record.CollectionMilestones)
	if err != nil {
		return fmt.Errorf("loading milestones: %w", err)
	}

	views := adapter.Milestones.NormalizeAll(n, base)
	rolled := stats.RollUp(views, tasks)
	changed := false
	for i := range rolled {
		if rolled[i].TaskCount == views[i].TaskCount &&
			rolled[i].CompletedTaskCount == views[i].CompletedTaskCount &&
			rolled[i].Progress == views[i].Progress {
			continue
		}
		base[i] = adapter.Milestones.Serialize(rolled[i], now)
		changed = true
	}
	if !changed {
		return nil
	}
	if err := repository.SaveCollection(ctx, recs, planID, record.CollectionMilestones, base); err != nil {
		return fmt.Errorf("saving milestones: %w", err)
	}
	return nil
}

// invalidView turns a view's validation errors into one error, fields in
// name order.
func invalidView(kind, id string, errs map[string]string) error {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, errs[k]))
	}
	return fmt.Errorf("invalid %s %q: %s", kind, id, strings.Join(msgs, "; "))
}
