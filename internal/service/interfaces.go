package service

import (
	"context"
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/importer"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/stats"
)

// Plan-scoped methods take a plan reference: a short id (case-insensitive)
// or the full plan id.

type PlanService interface {
	Create(ctx context.Context, p *domain.Plan) error
	Get(ctx context.Context, ref string) (*domain.Plan, error)
	List(ctx context.Context) ([]PlanSummary, error)
	Rename(ctx context.Context, ref, name string) (*domain.Plan, error)
	Delete(ctx context.Context, ref string) error
}

// PlanSummary pairs a plan with its record count per collection.
type PlanSummary struct {
	Plan   *domain.Plan
	Counts map[record.Collection]int
}

type ActionPlanService interface {
	Overview(ctx context.Context, planRef string) (*ActionPlanOverview, error)
	SaveMilestones(ctx context.Context, planRef string, changes []domain.Milestone) error
	SaveTasks(ctx context.Context, planRef string, changes []domain.Task) error
	SetTaskStatus(ctx context.Context, planRef, taskID string, status domain.Status) (*domain.Task, error)
	DeleteTask(ctx context.Context, planRef, taskID string) error
	SetMilestoneStatus(ctx context.Context, planRef, milestoneID string, status domain.Status) (*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, planRef, milestoneID string) error
}

// ActionPlanOverview is the action-plan dashboard: tasks grouped under
// their milestone plus the aggregate figures.
type ActionPlanOverview struct {
	Plan       *domain.Plan
	Milestones []domain.Milestone
	Tasks      []domain.Task
	Tree       hierarchy.Tree[domain.Task]
	Stats      stats.ActionPlanStats
	AsOf       time.Time
}

type CanvasService interface {
	Overview(ctx context.Context, planRef string) (*CanvasOverview, error)
	SaveItems(ctx context.Context, planRef string, changes []domain.CanvasItem) error
	SavePricing(ctx context.Context, planRef string, changes []domain.PricingEntry) error
	DeleteItem(ctx context.Context, planRef, id string) error
	DeletePricing(ctx context.Context, planRef, id string) error
}

// CanvasOverview groups canvas items by bucket, in canvas reading order.
type CanvasOverview struct {
	Plan    *domain.Plan
	Items   []domain.CanvasItem
	Buckets hierarchy.Tree[domain.CanvasItem]
	Pricing []domain.PricingEntry
	Stats   stats.CanvasStats
}

type MarketService interface {
	Overview(ctx context.Context, planRef string) (*MarketOverview, error)
	Swot(ctx context.Context, planRef string) (*SwotReport, error)
	SaveSegments(ctx context.Context, planRef string, changes []domain.CustomerSegment) error
	SaveCompetitors(ctx context.Context, planRef string, changes []domain.Competitor) error
	SaveOpportunities(ctx context.Context, planRef string, changes []domain.Opportunity) error
	SaveTrends(ctx context.Context, planRef string, changes []domain.Trend) error
	Delete(ctx context.Context, planRef string, c record.Collection, id string) error
}

type MarketOverview struct {
	Plan          *domain.Plan
	Segments      []domain.CustomerSegment
	Competitors   []domain.Competitor
	Opportunities []domain.Opportunity
	Trends        []domain.Trend
	Stats         stats.MarketStats
}

// SwotReport is a SWOT analysis derived from the market records and the
// plan's value propositions and key resources.
type SwotReport struct {
	Plan     *domain.Plan
	Analysis domain.SwotAnalysis
}

type RiskService interface {
	Overview(ctx context.Context, planRef string) (*RiskOverview, error)
	SaveClients(ctx context.Context, planRef string, changes []domain.RiskClient) error
	ResolveIncident(ctx context.Context, planRef, clientID, incidentID string) (*domain.RiskClient, error)
	DeleteClient(ctx context.Context, planRef, clientID string) error
}

type RiskOverview struct {
	Plan    *domain.Plan
	Clients []domain.RiskClient
	Stats   stats.RiskClientStats
	AsOf    time.Time
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromFile(ctx context.Context, f *importer.PlanFile) (*ImportResult, error)
}

// ImportResult describes a completed import. Merged is true when the file
// targeted an existing plan and its records were merged by id.
type ImportResult struct {
	Plan   *domain.Plan
	Merged bool
	Counts map[record.Collection]int
}
