package codes

import "github.com/alexanderramin/atelier/internal/domain"

var statusTable = newTable(domain.StatusPending,
	map[domain.Status]string{
		domain.StatusPending:    "todo",
		domain.StatusInProgress: "in-progress",
		domain.StatusBlocked:    "blocked",
		domain.StatusCompleted:  "done",
		domain.StatusCancelled:  "cancelled",
	},
	map[domain.Status][]string{
		domain.StatusPending:    {"pending", "not_started", "open", "new", "a_faire", "à faire", "en_attente"},
		domain.StatusInProgress: {"doing", "started", "active", "ongoing", "en_cours", "en cours"},
		domain.StatusBlocked:    {"on_hold", "waiting", "stuck", "bloqué", "bloque"},
		domain.StatusCompleted:  {"completed", "complete", "finished", "closed", "resolved", "résolu", "terminé", "termine", "fait"},
		domain.StatusCancelled:  {"canceled", "abandoned", "dropped", "annulé", "annule"},
	})

var priorityTable = newTable(domain.PriorityMedium,
	map[domain.Priority]string{
		domain.PriorityLow:    "low",
		domain.PriorityMedium: "medium",
		domain.PriorityHigh:   "high",
		domain.PriorityUrgent: "urgent",
	},
	map[domain.Priority][]string{
		domain.PriorityLow:    {"minor", "basse", "faible"},
		domain.PriorityMedium: {"normal", "moyenne", "normale"},
		domain.PriorityHigh:   {"major", "important", "haute", "élevée"},
		domain.PriorityUrgent: {"critical", "blocker", "critique", "urgente"},
	})

var levelTable = newTable(domain.LevelMedium,
	map[domain.Level]string{
		domain.LevelLow:      "low",
		domain.LevelMedium:   "medium",
		domain.LevelHigh:     "high",
		domain.LevelVeryHigh: "very_high",
	},
	map[domain.Level][]string{
		domain.LevelLow:      {"weak", "small", "faible", "bas", "basse"},
		domain.LevelMedium:   {"moderate", "average", "moyen", "moyenne", "modéré"},
		domain.LevelHigh:     {"strong", "big", "élevé", "élevée", "fort", "forte", "haut"},
		domain.LevelVeryHigh: {"very-high", "very high", "veryhigh", "huge", "très élevé", "très élevée", "très fort"},
	})

var evaluationTable = newTable(domain.EvaluationAverage,
	map[domain.Evaluation]string{
		domain.EvaluationPoor:      "poor",
		domain.EvaluationAverage:   "average",
		domain.EvaluationGood:      "good",
		domain.EvaluationExcellent: "excellent",
	},
	map[domain.Evaluation][]string{
		domain.EvaluationPoor:      {"bad", "weak", "low", "mauvais", "faible"},
		domain.EvaluationAverage:   {"fair", "ok", "medium", "moyen", "correct"},
		domain.EvaluationGood:      {"strong", "high", "bon", "bonne"},
		domain.EvaluationExcellent: {"very_good", "outstanding", "very_high", "très bon"},
	})

var riskTable = newTable(domain.RiskMedium,
	map[domain.RiskLevel]string{
		domain.RiskLow:      "low",
		domain.RiskMedium:   "medium",
		domain.RiskHigh:     "high",
		domain.RiskCritical: "critical",
	},
	map[domain.RiskLevel][]string{
		domain.RiskLow:      {"faible", "minor"},
		domain.RiskMedium:   {"moderate", "moyen", "modéré"},
		domain.RiskHigh:     {"élevé", "élevée", "major"},
		domain.RiskCritical: {"very_high", "severe", "critique", "blacklist"},
	})

var incidentTable = newTable(domain.IncidentOther,
	map[domain.IncidentType]string{
		domain.IncidentLatePayment:   "late_payment",
		domain.IncidentNonPayment:    "non_payment",
		domain.IncidentDispute:       "dispute",
		domain.IncidentScopeCreep:    "scope_creep",
		domain.IncidentCommunication: "communication",
		domain.IncidentOther:         "other",
	},
	map[domain.IncidentType][]string{
		domain.IncidentLatePayment:   {"late", "payment_delay", "retard", "retard_paiement", "retard de paiement"},
		domain.IncidentNonPayment:    {"unpaid", "nonpayment", "impayé", "impaye"},
		domain.IncidentDispute:       {"conflict", "litige", "contestation"},
		domain.IncidentScopeCreep:    {"scope_change", "hors_perimetre", "hors périmètre"},
		domain.IncidentCommunication: {"communication_issue", "ghosting", "unresponsive"},
		domain.IncidentOther:         {"autre", "misc"},
	})

var categoryTable = newTable(domain.CategoryOther,
	map[domain.MilestoneCategory]string{
		domain.CategoryStrategy:   "strategy",
		domain.CategoryMarketing:  "marketing",
		domain.CategorySales:      "sales",
		domain.CategoryProduct:    "product",
		domain.CategoryFinance:    "finance",
		domain.CategoryLegal:      "legal",
		domain.CategoryOperations: "operations",
		domain.CategoryOther:      "other",
	},
	map[domain.MilestoneCategory][]string{
		domain.CategoryStrategy:   {"business", "stratégie", "strategie"},
		domain.CategoryMarketing:  {"communication", "brand", "marque"},
		domain.CategorySales:      {"commercial", "ventes", "prospection"},
		domain.CategoryProduct:    {"produit", "service", "offer", "offre"},
		domain.CategoryFinance:    {"financial", "financier", "finances", "budget"},
		domain.CategoryLegal:      {"juridique", "admin", "administratif", "administrative"},
		domain.CategoryOperations: {"ops", "opérations", "operationnel", "opérationnel"},
		domain.CategoryOther:      {"autre", "misc", "general"},
	})

var bucketTable = newTable(domain.BucketValuePropositions,
	map[domain.CanvasBucket]string{
		domain.BucketKeyPartners:          "key_partners",
		domain.BucketKeyActivities:        "key_activities",
		domain.BucketKeyResources:         "key_resources",
		domain.BucketValuePropositions:    "value_propositions",
		domain.BucketCustomerRelationship: "customer_relationships",
		domain.BucketChannels:             "channels",
		domain.BucketCustomerSegments:     "customer_segments",
		domain.BucketCostStructure:        "cost_structure",
		domain.BucketRevenueStreams:       "revenue_streams",
	},
	map[domain.CanvasBucket][]string{
		domain.BucketKeyPartners:          {"partners", "partenaires", "partenaires_clés"},
		domain.BucketKeyActivities:        {"activities", "activités", "activités_clés"},
		domain.BucketKeyResources:         {"resources", "ressources", "ressources_clés"},
		domain.BucketValuePropositions:    {"value_proposition", "proposition_de_valeur", "propositions_de_valeur"},
		domain.BucketCustomerRelationship: {"customer_relationship", "customer_relations", "relations_clients", "relation_client"},
		domain.BucketChannels:             {"channel", "canaux", "canal"},
		domain.BucketCustomerSegments:     {"segments", "customer_segment", "segments_clients", "segments_de_clientèle"},
		domain.BucketCostStructure:        {"costs", "cost", "structure_de_coûts", "coûts"},
		domain.BucketRevenueStreams:       {"revenue", "revenues", "revenus", "sources_de_revenus", "flux_de_revenus"},
	})

var pricingTable = newTable(domain.PricingHourly,
	map[domain.PricingKind]string{
		domain.PricingHourly:       "hourly",
		domain.PricingPackage:      "package",
		domain.PricingSubscription: "subscription",
		domain.PricingCustom:       "custom",
	},
	map[domain.PricingKind][]string{
		domain.PricingHourly:       {"hourly_rate", "hourlyRate", "taux_horaire", "horaire"},
		domain.PricingPackage:      {"forfait", "pack", "bundle", "fixed"},
		domain.PricingSubscription: {"abonnement", "recurring", "retainer"},
		domain.PricingCustom:       {"custom_range", "range", "sur_devis", "quote", "devis"},
	})

// ParseStatus maps an external status code to a Status. Unknown → PENDING.
func ParseStatus(s string) domain.Status { return statusTable.parse(s) }

// StatusCode returns the canonical external code for s.
func StatusCode(s domain.Status) string { return statusTable.code(s) }

// ParsePriority maps an external priority code. Unknown → MEDIUM.
func ParsePriority(s string) domain.Priority { return priorityTable.parse(s) }

func PriorityCode(p domain.Priority) string { return priorityTable.code(p) }

// ParseLevel maps a potential/risk/threat/impact code. Unknown → MEDIUM.
func ParseLevel(s string) domain.Level { return levelTable.parse(s) }

func LevelCode(l domain.Level) string { return levelTable.code(l) }

// ParseEvaluation maps an evaluation code. Unknown → AVERAGE.
func ParseEvaluation(s string) domain.Evaluation { return evaluationTable.parse(s) }

func EvaluationCode(e domain.Evaluation) string { return evaluationTable.code(e) }

// ParseRiskLevel maps a client risk code. Unknown → MEDIUM.
func ParseRiskLevel(s string) domain.RiskLevel { return riskTable.parse(s) }

func RiskLevelCode(r domain.RiskLevel) string { return riskTable.code(r) }

// ParseIncidentType maps an incident type code. Unknown → OTHER.
func ParseIncidentType(s string) domain.IncidentType { return incidentTable.parse(s) }

func IncidentTypeCode(t domain.IncidentType) string { return incidentTable.code(t) }

// ParseMilestoneCategory maps a milestone category code. Unknown → OTHER.
func ParseMilestoneCategory(s string) domain.MilestoneCategory { return categoryTable.parse(s) }

func MilestoneCategoryCode(c domain.MilestoneCategory) string { return categoryTable.code(c) }

// ParseCanvasBucket maps a canvas bucket code. Unknown → VALUE_PROPOSITIONS.
func ParseCanvasBucket(s string) domain.CanvasBucket { return bucketTable.parse(s) }

func CanvasBucketCode(b domain.CanvasBucket) string { return bucketTable.code(b) }

// ParsePricingKind maps a pricing kind code. Unknown → HOURLY.
func ParsePricingKind(s string) domain.PricingKind { return pricingTable.parse(s) }

func PricingKindCode(k domain.PricingKind) string { return pricingTable.code(k) }

// Family identifies an enum family for validation and listing.
type Family string

const (
	FamilyStatus            Family = "status"
	FamilyPriority          Family = "priority"
	FamilyLevel             Family = "level"
	FamilyEvaluation        Family = "evaluation"
	FamilyRiskLevel         Family = "risk_level"
	FamilyIncidentType      Family = "incident_type"
	FamilyMilestoneCategory Family = "milestone_category"
	FamilyCanvasBucket      Family = "canvas_bucket"
	FamilyPricingKind       Family = "pricing_kind"
)

type familyOps struct {
	known func(string) bool
	codes func() []string
}

var families = map[Family]familyOps{
	FamilyStatus:            ops(statusTable),
	FamilyPriority:          ops(priorityTable),
	FamilyLevel:             ops(levelTable),
	FamilyEvaluation:        ops(evaluationTable),
	FamilyRiskLevel:         ops(riskTable),
	FamilyIncidentType:      ops(incidentTable),
	FamilyMilestoneCategory: ops(categoryTable),
	FamilyCanvasBucket:      ops(bucketTable),
	FamilyPricingKind:       ops(pricingTable),
}

func ops[T ~string](t *table[T]) familyOps {
	return familyOps{
		known: func(s string) bool {
			_, ok := t.find(s)
			return ok
		},
		codes: t.codes,
	}
}

// Known reports whether s is a recognized code (canonical or synonym) in
// the family. Unknown families report false.
func Known(f Family, s string) bool {
	if o, ok := families[f]; ok {
		return o.known(s)
	}
	return false
}

// Canonical returns the canonical codes of a family in no particular order.
func Canonical(f Family) []string {
	if o, ok := families[f]; ok {
		return o.codes()
	}
	return nil
}
