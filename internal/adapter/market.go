package adapter

import (
	"time"

	"github.com/alexanderramin/atelier/internal/codes"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
)

var Segments = New("segment", segmentView, segmentRecord)

var Competitors = New("competitor", competitorView, competitorRecord)

var Opportunities = New("opportunity", opportunityView, opportunityRecord)

var Trends = New("trend", trendView, trendRecord)

func segmentView(n *Normalizer, r *record.CustomerSegment) domain.CustomerSegment {
	return domain.CustomerSegment{
		ID:          n.ID("segment", r.ID),
		Name:        domain.StrFromPtrs(r.Name, r.Title),
		Description: domain.StrFromPtrs(r.Description),
		Size:        domain.StrFromPtrs(r.Size, r.MarketSize),
		Needs:       domain.StringsOrEmpty(r.Needs, r.Problems),
		Potential:   codes.ParseLevel(domain.StrFromPtrs(r.Potential, r.PotentialLevel)),
		CreatedAt:   domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:   domain.StrFromPtrs(r.UpdatedAt),
		View:        domain.NewView(),
	}
}

func segmentRecord(v *domain.CustomerSegment, now time.Time) record.CustomerSegment {
	created, updated := stamps(v.CreatedAt, now)
	return record.CustomerSegment{
		ID:          v.ID,
		Name:        domain.Ptr(v.Name),
		Description: domain.PtrIfNonEmpty(v.Description),
		Size:        domain.PtrIfNonEmpty(v.Size),
		Needs:       optStrings(v.Needs),
		Potential:   domain.Ptr(codes.LevelCode(v.Potential)),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func competitorView(n *Normalizer, r *record.Competitor) domain.Competitor {
	return domain.Competitor{
		ID:          n.ID("competitor", r.ID),
		Name:        domain.StrFromPtrs(r.Name),
		Description: domain.StrFromPtrs(r.Description),
		Website:     domain.StrFromPtrs(r.Website, r.URL),
		Strengths:   domain.StringsOrEmpty(r.Strengths),
		Weaknesses:  domain.StringsOrEmpty(r.Weaknesses),
		Threat:      codes.ParseLevel(domain.StrFromPtrs(r.ThreatLevel, r.Threat)),
		Evaluation:  codes.ParseEvaluation(domain.StrFromPtrs(r.Evaluation, r.Rating)),
		CreatedAt:   domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:   domain.StrFromPtrs(r.UpdatedAt),
		View:        domain.NewView(),
	}
}

func competitorRecord(v *domain.Competitor, now time.Time) record.Competitor {
	created, updated := stamps(v.CreatedAt, now)
	return record.Competitor{
		ID:          v.ID,
		Name:        domain.Ptr(v.Name),
		Description: domain.PtrIfNonEmpty(v.Description),
		Website:     domain.PtrIfNonEmpty(v.Website),
		Strengths:   optStrings(v.Strengths),
		Weaknesses:  optStrings(v.Weaknesses),
		ThreatLevel: domain.Ptr(codes.LevelCode(v.Threat)),
		Evaluation:  domain.Ptr(codes.EvaluationCode(v.Evaluation)),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func opportunityView(n *Normalizer, r *record.Opportunity) domain.Opportunity {
	return domain.Opportunity{
		ID:          n.ID("opportunity", r.ID),
		Title:       domain.StrFromPtrs(r.Title, r.Name),
		Description: domain.StrFromPtrs(r.Description),
		Potential:   codes.ParseLevel(domain.StrFromPtrs(r.Potential, r.PotentialLevel)),
		Risk:        codes.ParseLevel(domain.StrFromPtrs(r.RiskLevel, r.Risk)),
		CreatedAt:   domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:   domain.StrFromPtrs(r.UpdatedAt),
		View:        domain.NewView(),
	}
}

func opportunityRecord(v *domain.Opportunity, now time.Time) record.Opportunity {
	created, updated := stamps(v.CreatedAt, now)
	return record.Opportunity{
		ID:          v.ID,
		Title:       domain.Ptr(v.Title),
		Description: domain.PtrIfNonEmpty(v.Description),
		Potential:   domain.Ptr(codes.LevelCode(v.Potential)),
		RiskLevel:   domain.Ptr(codes.LevelCode(v.Risk)),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func trendView(n *Normalizer, r *record.Trend) domain.Trend {
	return domain.Trend{
		ID:          n.ID("trend", r.ID),
		Title:       domain.StrFromPtrs(r.Title, r.Name),
		Description: domain.StrFromPtrs(r.Description),
		Impact:      codes.ParseLevel(domain.StrFromPtrs(r.Impact, r.ImpactLevel)),
		Source:      domain.StrFromPtrs(r.Source),
		CreatedAt:   domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt:   domain.StrFromPtrs(r.UpdatedAt),
		View:        domain.NewView(),
	}
}

func trendRecord(v *domain.Trend, now time.Time) record.Trend {
	created, updated := stamps(v.CreatedAt, now)
	return record.Trend{
		ID:          v.ID,
		Title:       domain.Ptr(v.Title),
		Description: domain.PtrIfNonEmpty(v.Description),
		Impact:      domain.Ptr(codes.LevelCode(v.Impact)),
		Source:      domain.PtrIfNonEmpty(v.Source),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
