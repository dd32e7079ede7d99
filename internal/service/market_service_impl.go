package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/stats"
	"github.com/alexanderramin/atelier/internal/swot"
)

// strengthBuckets are the canvas buckets whose items feed SWOT strengths.
var strengthBuckets = []domain.CanvasBucket{
	domain.BucketValuePropositions,
	domain.BucketKeyResources,
}

type marketService struct {
	core
	synth *swot.Synthesizer
}

// NewMarketService builds the market service. A nil synth uses the default
// SWOT configuration.
func NewMarketService(uow db.UnitOfWork, synth *swot.Synthesizer, clock Clock, ids adapter.IDGenerator, observers ...UseCaseObserver) MarketService {
	if synth == nil {
		synth = swot.NewSynthesizer(swot.DefaultConfig())
	}
	return &marketService{core: newCore(uow, clock, ids, observers), synth: synth}
}

func (s *marketService) Overview(ctx context.Context, planRef string) (*MarketOverview, error) {
	var ov *MarketOverview
	err := s.planReadTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		var err error
		ov, err = s.load(ctx, plan, recs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

func (s *marketService) load(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) (*MarketOverview, error) {
	segments, err := loadViews(ctx, recs, plan.ID, record.CollectionSegments, adapter.Segments, s.norm)
	if err != nil {
		return nil, err
	}
	competitors, err := loadViews(ctx, recs, plan.ID, record.CollectionCompetitors, adapter.Competitors, s.norm)
	if err != nil {
		return nil, err
	}
	opportunities, err := loadViews(ctx, recs, plan.ID, record.CollectionOpportunities, adapter.Opportunities, s.norm)
	if err != nil {
		return nil, err
	}
	trends, err := loadViews(ctx, recs, plan.ID, record.CollectionTrends, adapter.Trends, s.norm)
	if err != nil {
		return nil, err
	}
	return &MarketOverview{
		Plan:          plan,
		Segments:      segments,
		Competitors:   competitors,
		Opportunities: opportunities,
		Trends:        trends,
		Stats:         stats.Market(segments, competitors, opportunities, trends),
	}, nil
}

func (s *marketService) Swot(ctx context.Context, planRef string) (report *SwotReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef}
	defer s.observe(ctx, "synthesize-swot", startedAt, fields, &err)

	err = s.planReadTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		ov, err := s.load(ctx, plan, recs)
		if err != nil {
			return err
		}
		items, err := loadViews(ctx, recs, plan.ID, record.CollectionCanvas, adapter.CanvasItems, s.norm)
		if err != nil {
			return err
		}

		var sources []string
		tree := groupByBucket(items)
		for _, b := range strengthBuckets {
			bucket, _ := tree.Lookup(string(b))
			for _, it := range bucket {
				sources = append(sources, it.Name)
			}
		}

		analysis := s.synth.Synthesize(swot.Input{
			Segments:        ov.Segments,
			Competitors:     ov.Competitors,
			Opportunities:   ov.Opportunities,
			Trends:          ov.Trends,
			StrengthSources: sources,
		})
		fields["items"] = analysis.Len()
		report = &SwotReport{Plan: plan, Analysis: analysis}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *marketService) SaveSegments(ctx context.Context, planRef string, changes []domain.CustomerSegment) error {
	return saveMarket(ctx, s, "save-segments", planRef, record.CollectionSegments, adapter.Segments, changes)
}

func (s *marketService) SaveCompetitors(ctx context.Context, planRef string, changes []domain.Competitor) error {
	return saveMarket(ctx, s, "save-competitors", planRef, record.CollectionCompetitors, adapter.Competitors, changes)
}

func (s *marketService) SaveOpportunities(ctx context.Context, planRef string, changes []domain.Opportunity) error {
	return saveMarket(ctx, s, "save-opportunities", planRef, record.CollectionOpportunities, adapter.Opportunities, changes)
}

func (s *marketService) SaveTrends(ctx context.Context, planRef string, changes []domain.Trend) error {
	return saveMarket(ctx, s, "save-trends", planRef, record.CollectionTrends, adapter.Trends, changes)
}

func saveMarket[R record.Keyed, V any](ctx context.Context, s *marketService, name, planRef string, c record.Collection, a adapter.Adapter[R, V], changes []V) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, name, startedAt, fields, &err)

	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return mergeViews(ctx, recs, plan.ID, c, a, s.norm, changes, now)
	})
}

func (s *marketService) Delete(ctx context.Context, planRef string, c record.Collection, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "collection": string(c), "id": id}
	defer s.observe(ctx, "delete-market-record", startedAt, fields, &err)

	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		switch c {
		case record.CollectionSegments:
			return removeRecord[record.CustomerSegment](ctx, recs, plan.ID, c, id)
		case record.CollectionCompetitors:
			return removeRecord[record.Competitor](ctx, recs, plan.ID, c, id)
		case record.CollectionOpportunities:
			return removeRecord[record.Opportunity](ctx, recs, plan.ID, c, id)
		case record.CollectionTrends:
			return removeRecord[record.Trend](ctx, recs, plan.ID, c, id)
		}
		return fmt.Errorf("%s is not a market collection", c)
	})
}
