package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/service"
)

// FormatMarket renders the four market collections as tables.
func FormatMarket(ov *service.MarketOverview) string {
	var b strings.Builder
	b.WriteString(FormatPlanHeading(ov.Plan) + "\n")

	section := func(title string, n int, body func() string) {
		b.WriteString("\n" + Header(fmt.Sprintf("%s (%d)", title, n)) + "\n")
		if n == 0 {
			b.WriteString(Dim("none") + "\n")
			return
		}
		b.WriteString(body())
	}

	section("Customer segments", len(ov.Segments), func() string {
		t := Table{Headers: []string{"ID", "NAME", "POTENTIAL", "SIZE"}}
		for _, s := range ov.Segments {
			t.Rows = append(t.Rows, []string{Dim(s.ID), Bold(s.Name), LevelIndicator(s.Potential), orDash(s.Size)})
		}
		return t.Render()
	})
	section("Competitors", len(ov.Competitors), func() string {
		t := Table{Headers: []string{"ID", "NAME", "THREAT", "EVALUATION", "WEAKNESSES"}}
		for _, c := range ov.Competitors {
			t.Rows = append(t.Rows, []string{
				Dim(c.ID), Bold(c.Name), LevelIndicator(c.Threat),
				strings.ToLower(string(c.Evaluation)), orDash(strings.Join(c.Weaknesses, ", ")),
			})
		}
		return t.Render()
	})
	section("Opportunities", len(ov.Opportunities), func() string {
		t := Table{Headers: []string{"ID", "TITLE", "POTENTIAL", "RISK"}}
		for _, o := range ov.Opportunities {
			t.Rows = append(t.Rows, []string{Dim(o.ID), Bold(o.Title), LevelIndicator(o.Potential), LevelIndicator(o.Risk)})
		}
		return t.Render()
	})
	section("Trends", len(ov.Trends), func() string {
		t := Table{Headers: []string{"ID", "TITLE", "IMPACT", "SOURCE"}}
		for _, tr := range ov.Trends {
			t.Rows = append(t.Rows, []string{Dim(tr.ID), Bold(tr.Title), LevelIndicator(tr.Impact), orDash(tr.Source)})
		}
		return t.Render()
	})

	s := ov.Stats
	fmt.Fprintf(&b, "\n%d high-potential segments, %d strong competitors, %d promising opportunities, %d high-impact trends\n",
		s.HighPotentialSegments, s.HighThreatCompetitors, s.HighPotentialOpportunities, s.HighImpactTrends)
	return RenderBox("Market", b.String())
}

// FormatSwot renders the four SWOT quadrants with each item's importance.
func FormatSwot(r *service.SwotReport) string {
	var b strings.Builder
	b.WriteString(FormatPlanHeading(r.Plan) + "\n")

	quadrant := func(title string, items []domain.SwotItem) {
		b.WriteString("\n" + Header(fmt.Sprintf("%s (%d)", title, len(items))) + "\n")
		if len(items) == 0 {
			b.WriteString(Dim("none") + "\n")
			return
		}
		for _, it := range items {
			fmt.Fprintf(&b, "  %s %s %s\n", importanceMarker(it.Importance), it.Content, Dim("("+it.Tag+")"))
		}
	}
	quadrant("Strengths", r.Analysis.Strengths)
	quadrant("Weaknesses", r.Analysis.Weaknesses)
	quadrant("Opportunities", r.Analysis.Opportunities)
	quadrant("Threats", r.Analysis.Threats)

	if r.Analysis.Len() == 0 {
		b.WriteString("\n" + Dim("Add segments, competitors, opportunities or trends to fill the analysis.") + "\n")
	}
	return RenderBox("SWOT", b.String())
}

func importanceMarker(n int) string {
	s := fmt.Sprintf("[%d]", n)
	switch {
	case n >= 5:
		return StyleRed.Render(s)
	case n == 4:
		return StyleYellow.Render(s)
	}
	return Dim(s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
