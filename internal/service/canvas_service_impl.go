package service

import (
	"context"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/stats"
)

type canvasService struct {
	core
}

func NewCanvasService(uow db.UnitOfWork, clock Clock, ids adapter.IDGenerator, observers ...UseCaseObserver) CanvasService {
	return &canvasService{core: newCore(uow, clock, ids, observers)}
}

func (s *canvasService) Overview(ctx context.Context, planRef string) (*CanvasOverview, error) {
	var ov *CanvasOverview
	err := s.planReadTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		items, err := loadViews(ctx, recs, plan.ID, record.CollectionCanvas, adapter.CanvasItems, s.norm)
		if err != nil {
			return err
		}
		pricing, err := loadViews(ctx, recs, plan.ID, record.CollectionPricing, adapter.Pricing, s.norm)
		if err != nil {
			return err
		}
		ov = &CanvasOverview{
			Plan:    plan,
			Items:   items,
			Buckets: groupByBucket(items),
			Pricing: pricing,
			Stats:   stats.Canvas(items, pricing),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

// groupByBucket keys canvas items by bucket code in canvas reading order.
// Every item has a known bucket, so the unassigned bucket stays empty.
func groupByBucket(items []domain.CanvasItem) hierarchy.Tree[domain.CanvasItem] {
	return hierarchy.Build(items, domain.CanvasBuckets,
		func(it domain.CanvasItem) string { return string(it.Bucket) },
		func(b domain.CanvasBucket) string { return string(b) },
	)
}

func (s *canvasService) SaveItems(ctx context.Context, planRef string, changes []domain.CanvasItem) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, "save-canvas-items", startedAt, fields, &err)

	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return mergeViews(ctx, recs, plan.ID, record.CollectionCanvas, adapter.CanvasItems, s.norm, changes, now)
	})
}

func (s *canvasService) SavePricing(ctx context.Context, planRef string, changes []domain.PricingEntry) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, "save-pricing", startedAt, fields, &err)

	for i := range changes {
		if !changes[i].Validate() {
			return invalidView("pricing entry", changes[i].ID, changes[i].ValidationErrors)
		}
	}
	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return mergeViews(ctx, recs, plan.ID, record.CollectionPricing, adapter.Pricing, s.norm, changes, now)
	})
}

func (s *canvasService) DeleteItem(ctx context.Context, planRef, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "id": id}
	defer s.observe(ctx, "delete-canvas-item", startedAt, fields, &err)

	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return removeRecord[record.CanvasItem](ctx, recs, plan.ID, record.CollectionCanvas, id)
	})
}

func (s *canvasService) DeletePricing(ctx context.Context, planRef, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "id": id}
	defer s.observe(ctx, "delete-pricing", startedAt, fields, &err)

	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return removeRecord[record.PricingEntry](ctx, recs, plan.ID, record.CollectionPricing, id)
	})
}
