package record

// Collection names the persisted collections of a plan.
type Collection string

const (
	CollectionMilestones    Collection = "milestones"
	CollectionTasks         Collection = "tasks"
	CollectionCanvas        Collection = "canvas"
	CollectionPricing       Collection = "pricing"
	CollectionSegments      Collection = "segments"
	CollectionCompetitors   Collection = "competitors"
	CollectionOpportunities Collection = "opportunities"
	CollectionTrends        Collection = "trends"
	CollectionRiskClients   Collection = "risk_clients"
)

// Collections lists every collection in a stable order.
var Collections = []Collection{
	CollectionMilestones,
	CollectionTasks,
	CollectionCanvas,
	CollectionPricing,
	CollectionSegments,
	CollectionCompetitors,
	CollectionOpportunities,
	CollectionTrends,
	CollectionRiskClients,
}
