package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/importer"
	"github.com/alexanderramin/atelier/internal/reconcile"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
)

type importService struct {
	core
}

func NewImportService(uow db.UnitOfWork, clock Clock, ids adapter.IDGenerator, observers ...UseCaseObserver) ImportService {
	return &importService{core: newCore(uow, clock, ids, observers)}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	f, err := importer.LoadPlanFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlanFromFile(ctx, f)
}

// ImportPlanFromFile creates the plan named by the file, or merges the
// file's records by id into it when a plan with that short id exists.
// Everything is written in one transaction.
func (s *importService) ImportPlanFromFile(ctx context.Context, f *importer.PlanFile) (result *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"short_id": f.Plan.ShortID}
	defer s.observe(ctx, "import-plan", startedAt, fields, &err)

	if errs := importer.ValidatePlanFile(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	now := s.now()
	conv := importer.Convert(f, s.norm, now)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		recs := repository.NewSQLiteRecordRepo(tx)

		plan, merged, err := upsertPlan(ctx, plans, conv.Plan, now)
		if err != nil {
			return err
		}
		if err := saveConverted(ctx, recs, plan.ID, conv); err != nil {
			return err
		}
		if merged {
			if err := syncMilestones(ctx, recs, plan.ID, s.norm, now); err != nil {
				return err
			}
		}
		result = &ImportResult{Plan: plan, Merged: merged, Counts: conv.Counts()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["merged"] = result.Merged
	return result, nil
}

// upsertPlan creates p, or refreshes the existing plan with the same short
// id from p's header fields.
func upsertPlan(ctx context.Context, plans repository.PlanRepo, p *domain.Plan, now time.Time) (*domain.Plan, bool, error) {
	existing, err := plans.GetByShortID(ctx, p.ShortID)
	if errors.Is(err, repository.ErrNotFound) {
		if err := plans.Create(ctx, p); err != nil {
			return nil, false, fmt.Errorf("creating plan: %w", err)
		}
		return p, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	existing.Name = p.Name
	existing.Owner = domain.CoalesceStr(p.Owner, existing.Owner)
	existing.Activity = domain.CoalesceStr(p.Activity, existing.Activity)
	existing.Currency = p.Currency
	existing.UpdatedAt = now
	if err := plans.Update(ctx, existing); err != nil {
		return nil, false, fmt.Errorf("updating plan: %w", err)
	}
	return existing, true, nil
}

func saveConverted(ctx context.Context, recs repository.RecordRepo, planID string, c *importer.Converted) error {
	steps := []func() error{
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionMilestones, c.Milestones) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionTasks, c.Tasks) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionCanvas, c.Canvas) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionPricing, c.Pricing) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionSegments, c.Segments) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionCompetitors, c.Competitors) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionOpportunities, c.Opportunities) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionTrends, c.Trends) },
		func() error { return mergeRecords(ctx, recs, planID, record.CollectionRiskClients, c.RiskClients) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// mergeRecords merges already-canonical records into collection c by id.
// Empty input leaves the collection untouched.
func mergeRecords[R record.Keyed](ctx context.Context, recs repository.RecordRepo, planID string, c record.Collection, rs []R) error {
	if len(rs) == 0 {
		return nil
	}
	base, err := repository.LoadCollection[R](ctx, recs, planID, c)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c, err)
	}
	if err := repository.SaveCollection(ctx, recs, planID, c, reconcile.MergeByID(base, rs)); err != nil {
		return fmt.Errorf("saving %s: %w", c, err)
	}
	return nil
}
