package domain

// Status is the lifecycle state shared by milestones, tasks and subtasks.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// IsClosed reports whether no further work is expected.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Level is the shared 4-point scale used for potential, risk, threat and impact.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelVeryHigh Level = "VERY_HIGH"
)

// AtLeastHigh reports whether l is HIGH or VERY_HIGH.
func (l Level) AtLeastHigh() bool {
	return l == LevelHigh || l == LevelVeryHigh
}

type Evaluation string

const (
	EvaluationPoor      Evaluation = "POOR"
	EvaluationAverage   Evaluation = "AVERAGE"
	EvaluationGood      Evaluation = "GOOD"
	EvaluationExcellent Evaluation = "EXCELLENT"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

type IncidentType string

const (
	IncidentLatePayment   IncidentType = "LATE_PAYMENT"
	IncidentNonPayment    IncidentType = "NON_PAYMENT"
	IncidentDispute       IncidentType = "DISPUTE"
	IncidentScopeCreep    IncidentType = "SCOPE_CREEP"
	IncidentCommunication IncidentType = "COMMUNICATION"
	IncidentOther         IncidentType = "OTHER"
)

type MilestoneCategory string

const (
	CategoryStrategy   MilestoneCategory = "STRATEGY"
	CategoryMarketing  MilestoneCategory = "MARKETING"
	CategorySales      MilestoneCategory = "SALES"
	CategoryProduct    MilestoneCategory = "PRODUCT"
	CategoryFinance    MilestoneCategory = "FINANCE"
	CategoryLegal      MilestoneCategory = "LEGAL"
	CategoryOperations MilestoneCategory = "OPERATIONS"
	CategoryOther      MilestoneCategory = "OTHER"
)

// CanvasBucket is one of the nine Business-Model-Canvas blocks.
type CanvasBucket string

const (
	BucketKeyPartners          CanvasBucket = "KEY_PARTNERS"
	BucketKeyActivities        CanvasBucket = "KEY_ACTIVITIES"
	BucketKeyResources         CanvasBucket = "KEY_RESOURCES"
	BucketValuePropositions    CanvasBucket = "VALUE_PROPOSITIONS"
	BucketCustomerRelationship CanvasBucket = "CUSTOMER_RELATIONSHIPS"
	BucketChannels             CanvasBucket = "CHANNELS"
	BucketCustomerSegments     CanvasBucket = "CUSTOMER_SEGMENTS"
	BucketCostStructure        CanvasBucket = "COST_STRUCTURE"
	BucketRevenueStreams       CanvasBucket = "REVENUE_STREAMS"
)

// CanvasBuckets lists the nine buckets in canvas reading order.
var CanvasBuckets = []CanvasBucket{
	BucketKeyPartners,
	BucketKeyActivities,
	BucketKeyResources,
	BucketValuePropositions,
	BucketCustomerRelationship,
	BucketChannels,
	BucketCustomerSegments,
	BucketCostStructure,
	BucketRevenueStreams,
}

type PricingKind string

const (
	PricingHourly       PricingKind = "HOURLY"
	PricingPackage      PricingKind = "PACKAGE"
	PricingSubscription PricingKind = "SUBSCRIPTION"
	PricingCustom       PricingKind = "CUSTOM"
)

type SwotCategory string

const (
	SwotStrength    SwotCategory = "STRENGTH"
	SwotWeakness    SwotCategory = "WEAKNESS"
	SwotOpportunity SwotCategory = "OPPORTUNITY"
	SwotThreat      SwotCategory = "THREAT"
)
