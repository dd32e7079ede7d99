// Package swot derives a SWOT analysis from the market collections.
//
// The analysis is recomputed from its sources on every call and never
// stored. Item ids are derived from the SWOT category, the rule tag and the
// source record id, so the same inputs always produce the same items and
// sources from different collections never share an id.
package swot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
)

// Config holds the tunable constants of the synthesis rules.
type Config struct {
	// CompetitorWeaknessCap is how many weaknesses per competitor become
	// opportunities.
	CompetitorWeaknessCap int `yaml:"competitor_weakness_cap"`
	ImportanceVeryHigh    int `yaml:"importance_very_high"`
	ImportanceHigh        int `yaml:"importance_high"`
	ImportanceBase        int `yaml:"importance_base"`
}

func DefaultConfig() Config {
	return Config{
		CompetitorWeaknessCap: 2,
		ImportanceVeryHigh:    5,
		ImportanceHigh:        4,
		ImportanceBase:        3,
	}
}

// Importance scores are bounded to this range.
const (
	MinImportance = 3
	MaxImportance = 5
)

// WithDefaults fills unset (zero) fields from DefaultConfig and clamps the
// importance scores to [MinImportance, MaxImportance]. A negative cap
// disables competitor-weakness opportunities.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.CompetitorWeaknessCap == 0 {
		c.CompetitorWeaknessCap = d.CompetitorWeaknessCap
	}
	if c.ImportanceVeryHigh == 0 {
		c.ImportanceVeryHigh = d.ImportanceVeryHigh
	}
	if c.ImportanceHigh == 0 {
		c.ImportanceHigh = d.ImportanceHigh
	}
	if c.ImportanceBase == 0 {
		c.ImportanceBase = d.ImportanceBase
	}
	c.ImportanceVeryHigh = clampImportance(c.ImportanceVeryHigh)
	c.ImportanceHigh = clampImportance(c.ImportanceHigh)
	c.ImportanceBase = clampImportance(c.ImportanceBase)
	return c
}

// Validate rejects importance scores outside [MinImportance, MaxImportance].
// Zero means unset and is accepted.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"importance_very_high", c.ImportanceVeryHigh},
		{"importance_high", c.ImportanceHigh},
		{"importance_base", c.ImportanceBase},
	} {
		if f.value != 0 && (f.value < MinImportance || f.value > MaxImportance) {
			return fmt.Errorf("swot %s must be between %d and %d, got %d", f.name, MinImportance, MaxImportance, f.value)
		}
	}
	return nil
}

func clampImportance(v int) int {
	return min(max(v, MinImportance), MaxImportance)
}

// Input is the set of source collections for one analysis.
type Input struct {
	Segments        []domain.CustomerSegment
	Competitors     []domain.Competitor
	Opportunities   []domain.Opportunity
	Trends          []domain.Trend
	StrengthSources []string
}

// Tags classify where an item came from.
const (
	TagSegment            = "segment"
	TagCompetitor         = "competitor"
	TagCompetitorWeakness = "competitor-weakness"
	TagOpportunity        = "opportunity"
	TagOpportunityRisk    = "opportunity-risk"
	TagTrend              = "trend"
	TagStrengthSource     = "strength-source"
)

type Synthesizer struct {
	cfg Config
}

func NewSynthesizer(cfg Config) *Synthesizer {
	return &Synthesizer{cfg: cfg.WithDefaults()}
}

// Config returns the effective configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Synthesize applies the rules in a fixed order: strength sources, segments,
// competitors, opportunities, trends. All four lists are non-nil.
func (s *Synthesizer) Synthesize(in Input) domain.SwotAnalysis {
	a := domain.SwotAnalysis{
		Strengths:     []domain.SwotItem{},
		Weaknesses:    []domain.SwotItem{},
		Opportunities: []domain.SwotItem{},
		Threats:       []domain.SwotItem{},
	}

	for i, src := range in.StrengthSources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		a.Strengths = append(a.Strengths, item(domain.SwotStrength, strconv.Itoa(i+1), 0,
			src, TagStrengthSource, s.cfg.ImportanceBase))
	}

	for _, seg := range in.Segments {
		switch {
		case seg.Potential.AtLeastHigh():
			a.Strengths = append(a.Strengths, item(domain.SwotStrength, seg.ID, 0,
				fmt.Sprintf("High-potential customer segment: %s", seg.Name), TagSegment, s.importance(seg.Potential)))
		case seg.Potential == domain.LevelLow:
			a.Weaknesses = append(a.Weaknesses, item(domain.SwotWeakness, seg.ID, 0,
				fmt.Sprintf("Low-potential customer segment: %s", seg.Name), TagSegment, s.cfg.ImportanceBase))
		}
	}

	for _, c := range in.Competitors {
		if c.Threat.AtLeastHigh() {
			a.Threats = append(a.Threats, item(domain.SwotThreat, c.ID, 0,
				fmt.Sprintf("Strong competitor: %s", c.Name), TagCompetitor, s.importance(c.Threat)))
		}
		for i, w := range capped(c.Weaknesses, s.cfg.CompetitorWeaknessCap) {
			a.Opportunities = append(a.Opportunities, item(domain.SwotOpportunity, c.ID, i+1,
				fmt.Sprintf("Competitor weakness (%s): %s", c.Name, w), TagCompetitorWeakness, s.cfg.ImportanceBase))
		}
	}

	for _, o := range in.Opportunities {
		if o.Potential.AtLeastHigh() {
			a.Opportunities = append(a.Opportunities, item(domain.SwotOpportunity, o.ID, 0,
				fmt.Sprintf("Market opportunity: %s", o.Title), TagOpportunity, s.importance(o.Potential)))
		}
		if o.Risk.AtLeastHigh() {
			a.Threats = append(a.Threats, item(domain.SwotThreat, o.ID, 0,
				fmt.Sprintf("Risky opportunity: %s", o.Title), TagOpportunityRisk, s.importance(o.Risk)))
		}
	}

	for _, t := range in.Trends {
		if t.Impact.AtLeastHigh() {
			a.Opportunities = append(a.Opportunities, item(domain.SwotOpportunity, t.ID, 0,
				fmt.Sprintf("Market trend: %s", t.Title), TagTrend, s.importance(t.Impact)))
		}
	}
	return a
}

// Synthesize runs the rules with the default configuration.
func Synthesize(in Input) domain.SwotAnalysis {
	return NewSynthesizer(DefaultConfig()).Synthesize(in)
}

func (s *Synthesizer) importance(l domain.Level) int {
	switch l {
	case domain.LevelVeryHigh:
		return s.cfg.ImportanceVeryHigh
	case domain.LevelHigh:
		return s.cfg.ImportanceHigh
	}
	return s.cfg.ImportanceBase
}

// ItemID returns the id of the item a rule tagged tag derived from sourceID.
// n distinguishes several items from one source and is omitted when zero.
func ItemID(c domain.SwotCategory, tag, sourceID string, n int) string {
	id := "swot-" + strings.ToLower(string(c)) + "-" + tag + "-" + sourceID
	if n > 0 {
		id += fmt.Sprintf("-%d", n)
	}
	return id
}

func item(c domain.SwotCategory, sourceID string, n int, content, tag string, importance int) domain.SwotItem {
	return domain.SwotItem{
		ID:         ItemID(c, tag, sourceID, n),
		Content:    content,
		Tag:        tag,
		Importance: importance,
		Category:   c,
	}
}

func capped(ws []string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	out := make([]string, 0, limit)
	for _, w := range ws {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}
