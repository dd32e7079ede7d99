package stats

import "github.com/alexanderramin/atelier/internal/domain"

type MarketStats struct {
	Segments      int
	Competitors   int
	Opportunities int
	Trends        int

	SegmentsByPotential      map[domain.Level]int
	CompetitorsByThreat      map[domain.Level]int
	OpportunitiesByPotential map[domain.Level]int
	TrendsByImpact           map[domain.Level]int

	HighPotentialSegments      int
	HighThreatCompetitors      int
	HighPotentialOpportunities int
	HighRiskOpportunities      int
	HighImpactTrends           int
}

// Market partitions each market collection on its level field.
func Market(segments []domain.CustomerSegment, competitors []domain.Competitor, opportunities []domain.Opportunity, trends []domain.Trend) MarketStats {
	s := MarketStats{
		Segments:                 len(segments),
		Competitors:              len(competitors),
		Opportunities:            len(opportunities),
		Trends:                   len(trends),
		SegmentsByPotential:      map[domain.Level]int{},
		CompetitorsByThreat:      map[domain.Level]int{},
		OpportunitiesByPotential: map[domain.Level]int{},
		TrendsByImpact:           map[domain.Level]int{},
	}
	for _, seg := range segments {
		s.SegmentsByPotential[seg.Potential]++
		if seg.Potential.AtLeastHigh() {
			s.HighPotentialSegments++
		}
	}
	for _, c := range competitors {
		s.CompetitorsByThreat[c.Threat]++
		if c.Threat.AtLeastHigh() {
			s.HighThreatCompetitors++
		}
	}
	for _, o := range opportunities {
		s.OpportunitiesByPotential[o.Potential]++
		if o.Potential.AtLeastHigh() {
			s.HighPotentialOpportunities++
		}
		if o.Risk.AtLeastHigh() {
			s.HighRiskOpportunities++
		}
	}
	for _, t := range trends {
		s.TrendsByImpact[t.Impact]++
		if t.Impact.AtLeastHigh() {
			s.HighImpactTrends++
		}
	}
	return s
}
