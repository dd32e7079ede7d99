package codes

import (
	"testing"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoundTrip_EveryCanonicalCode(t *testing.T) {
	cases := []struct {
		family  Family
		reverse func(string) string
	}{
		{FamilyStatus, func(s string) string { return StatusCode(ParseStatus(s)) }},
		{FamilyPriority, func(s string) string { return PriorityCode(ParsePriority(s)) }},
		{FamilyLevel, func(s string) string { return LevelCode(ParseLevel(s)) }},
		{FamilyEvaluation, func(s string) string { return EvaluationCode(ParseEvaluation(s)) }},
		{FamilyRiskLevel, func(s string) string { return RiskLevelCode(ParseRiskLevel(s)) }},
		{FamilyIncidentType, func(s string) string { return IncidentTypeCode(ParseIncidentType(s)) }},
		{FamilyMilestoneCategory, func(s string) string { return MilestoneCategoryCode(ParseMilestoneCategory(s)) }},
		{FamilyCanvasBucket, func(s string) string { return CanvasBucketCode(ParseCanvasBucket(s)) }},
		{FamilyPricingKind, func(s string) string { return PricingKindCode(ParsePricingKind(s)) }},
	}
	for _, tc := range cases {
		t.Run(string(tc.family), func(t *testing.T) {
			canon := Canonical(tc.family)
			assert.NotEmpty(t, canon)
			for _, c := range canon {
				assert.Equal(t, c, tc.reverse(c), "round trip of %q", c)
				assert.True(t, Known(tc.family, c))
			}
		})
	}
}

func TestParseStatus_Synonyms(t *testing.T) {
	cases := map[string]domain.Status{
		"todo":        domain.StatusPending,
		"TODO":        domain.StatusPending,
		"pending":     domain.StatusPending,
		"à faire":     domain.StatusPending,
		"in-progress": domain.StatusInProgress,
		"in_progress": domain.StatusInProgress,
		"inProgress":  domain.StatusInProgress,
		"IN PROGRESS": domain.StatusInProgress,
		"En cours":    domain.StatusInProgress,
		"done":        domain.StatusCompleted,
		"Completed":   domain.StatusCompleted,
		"terminé":     domain.StatusCompleted,
		"canceled":    domain.StatusCancelled,
		"blocked":     domain.StatusBlocked,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseStatus(in), "input %q", in)
	}
}

func TestParse_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, domain.StatusPending, ParseStatus("whatever"))
	assert.Equal(t, domain.StatusPending, ParseStatus(""))
	assert.Equal(t, domain.PriorityMedium, ParsePriority("p0"))
	assert.Equal(t, domain.LevelMedium, ParseLevel("enormous-ish"))
	assert.Equal(t, domain.EvaluationAverage, ParseEvaluation("?"))
	assert.Equal(t, domain.RiskMedium, ParseRiskLevel(""))
	assert.Equal(t, domain.IncidentOther, ParseIncidentType("fire"))
	assert.Equal(t, domain.CategoryOther, ParseMilestoneCategory("hobby"))
	assert.Equal(t, domain.BucketValuePropositions, ParseCanvasBucket("misc"))
	assert.Equal(t, domain.PricingHourly, ParsePricingKind(""))
}

func TestParseLevel_FrenchAndSpacing(t *testing.T) {
	assert.Equal(t, domain.LevelVeryHigh, ParseLevel("very high"))
	assert.Equal(t, domain.LevelVeryHigh, ParseLevel("VERY_HIGH"))
	assert.Equal(t, domain.LevelVeryHigh, ParseLevel("Très élevé"))
	assert.Equal(t, domain.LevelHigh, ParseLevel("élevé"))
	assert.Equal(t, domain.LevelLow, ParseLevel("faible"))
}

func TestParseCanvasBucket_CamelCaseLegacy(t *testing.T) {
	assert.Equal(t, domain.BucketKeyPartners, ParseCanvasBucket("keyPartners"))
	assert.Equal(t, domain.BucketRevenueStreams, ParseCanvasBucket("revenueStreams"))
	assert.Equal(t, domain.BucketCustomerRelationship, ParseCanvasBucket("relations clients"))
}

func TestCode_UnknownEnumValueUsesFallbackCode(t *testing.T) {
	assert.Equal(t, "todo", StatusCode(domain.Status("bogus")))
	assert.Equal(t, "medium", PriorityCode(""))
}

func TestCode_EnumNamesParse(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusPending, domain.StatusInProgress, domain.StatusBlocked,
		domain.StatusCompleted, domain.StatusCancelled,
	} {
		assert.Equal(t, s, ParseStatus(string(s)))
		assert.Equal(t, s, ParseStatus(StatusCode(s)))
	}
}

func TestKnown_UnknownFamily(t *testing.T) {
	assert.False(t, Known(Family("colour"), "red"))
	assert.Nil(t, Canonical(Family("colour")))
	assert.False(t, Known(FamilyStatus, "nonsense"))
	assert.True(t, Known(FamilyStatus, "en_cours"))
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, "inprogress", foldKey(" In-Progress "))
	assert.Equal(t, "treseleve", foldKey("Très Élevé"))
	assert.Equal(t, "", foldKey("--"))
}
