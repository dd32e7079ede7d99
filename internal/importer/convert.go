package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/stats"
	"github.com/google/uuid"
)

const defaultCurrency = "EUR"

// Converted holds an import file rewritten into canonical records, ready for
// persistence.
type Converted struct {
	Plan          *domain.Plan
	Milestones    []record.Milestone
	Tasks         []record.Task
	Canvas        []record.CanvasItem
	Pricing       []record.PricingEntry
	Segments      []record.CustomerSegment
	Competitors   []record.Competitor
	Opportunities []record.Opportunity
	Trends        []record.Trend
	RiskClients   []record.RiskClient
}

// Counts returns the number of records per collection.
func (c *Converted) Counts() map[record.Collection]int {
	return map[record.Collection]int{
		record.CollectionMilestones:    len(c.Milestones),
		record.CollectionTasks:         len(c.Tasks),
		record.CollectionCanvas:        len(c.Canvas),
		record.CollectionPricing:       len(c.Pricing),
		record.CollectionSegments:      len(c.Segments),
		record.CollectionCompetitors:   len(c.Competitors),
		record.CollectionOpportunities: len(c.Opportunities),
		record.CollectionTrends:        len(c.Trends),
		record.CollectionRiskClients:   len(c.RiskClients),
	}
}

// Convert canonicalizes a validated PlanFile. Call ValidatePlanFile first;
// Convert assumes the file is valid. Milestone task counts and progress are
// recomputed from the imported tasks.
func Convert(f *PlanFile, n *adapter.Normalizer, now time.Time) *Converted {
	now = now.UTC()

	plan := &domain.Plan{
		ID:        uuid.New().String(),
		ShortID:   strings.ToUpper(strings.TrimSpace(f.Plan.ShortID)),
		Name:      strings.TrimSpace(f.Plan.Name),
		Owner:     f.Plan.Owner,
		Activity:  f.Plan.Activity,
		Currency:  strings.ToUpper(domain.CoalesceStr(f.Plan.Currency, defaultCurrency)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks := adapter.Tasks.NormalizeAll(n, f.Tasks)
	milestones := stats.RollUp(adapter.Milestones.NormalizeAll(n, f.Milestones), tasks)

	return &Converted{
		Plan:          plan,
		Milestones:    adapter.Milestones.SerializeAll(milestones, now),
		Tasks:         adapter.Tasks.SerializeAll(tasks, now),
		Canvas:        adapter.CanvasItems.Canonicalize(n, f.Canvas, now),
		Pricing:       adapter.Pricing.Canonicalize(n, f.Pricing, now),
		Segments:      adapter.Segments.Canonicalize(n, f.Segments, now),
		Competitors:   adapter.Competitors.Canonicalize(n, f.Competitors, now),
		Opportunities: adapter.Opportunities.Canonicalize(n, f.Opportunities, now),
		Trends:        adapter.Trends.Canonicalize(n, f.Trends, now),
		RiskClients:   adapter.RiskClients.Canonicalize(n, f.RiskClients, now),
	}
}
