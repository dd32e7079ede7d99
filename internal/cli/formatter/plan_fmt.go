package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/service"
)

// FormatPlanList renders every plan with its record counts.
func FormatPlanList(summaries []service.PlanSummary, defaultPlan string) string {
	t := Table{
		Headers:    []string{"ID", "NAME", "OWNER", "TASKS", "CANVAS", "MARKET", "CLIENTS", "UPDATED"},
		RightAlign: []bool{false, false, false, true, true, true, true, false},
	}
	for _, s := range summaries {
		p := s.Plan
		id := p.DisplayID()
		if strings.EqualFold(p.ShortID, defaultPlan) {
			id = StyleGreen.Render("* " + id)
		}
		owner := Dim("--")
		if p.Owner != "" {
			owner = p.Owner
		}
		market := s.Counts[record.CollectionSegments] + s.Counts[record.CollectionCompetitors] +
			s.Counts[record.CollectionOpportunities] + s.Counts[record.CollectionTrends]

		t.Rows = append(t.Rows, []string{
			id,
			Bold(p.Name),
			owner,
			strconv.Itoa(s.Counts[record.CollectionTasks]),
			strconv.Itoa(s.Counts[record.CollectionCanvas]),
			strconv.Itoa(market),
			strconv.Itoa(s.Counts[record.CollectionRiskClients]),
			Dim(p.UpdatedAt.Format("2006-01-02")),
		})
	}
	return RenderBox("Plans", t.Render())
}

// FormatPlanHeading is the one-line plan title used atop every report.
func FormatPlanHeading(p *domain.Plan) string {
	line := Bold(p.Name) + " " + Dim("["+p.DisplayID()+"]")
	if p.Activity != "" {
		line += "  " + StylePurple.Render(p.Activity)
	}
	return line
}

// FormatImportResult summarizes what an import wrote.
func FormatImportResult(res *service.ImportResult) string {
	verb := "Created"
	if res.Merged {
		verb = "Merged into"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s plan %s [%s]\n", verb, res.Plan.Name, res.Plan.ShortID)
	for _, c := range record.Collections {
		if n := res.Counts[c]; n > 0 {
			fmt.Fprintf(&b, "  %-14s %d\n", c, n)
		}
	}
	return b.String()
}
