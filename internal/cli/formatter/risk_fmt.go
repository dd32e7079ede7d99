package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/service"
)

// FormatRisk renders the client table and every open incident.
func FormatRisk(ov *service.RiskOverview) string {
	var b strings.Builder
	b.WriteString(FormatPlanHeading(ov.Plan) + "\n\n")

	if len(ov.Clients) == 0 {
		b.WriteString(Dim("No clients tracked.") + "\n")
		return RenderBox("Client risk", b.String())
	}

	currency := ov.Plan.Currency
	t := Table{
		Headers:    []string{"ID", "CLIENT", "RISK", "OPEN", "OUTSTANDING"},
		RightAlign: []bool{false, false, false, true, true},
	}
	for i := range ov.Clients {
		c := &ov.Clients[i]
		name := Bold(c.Name)
		if c.Company != "" {
			name += " " + Dim("("+c.Company+")")
		}
		open := 0
		for _, inc := range c.Incidents {
			if !inc.Resolved {
				open++
			}
		}
		t.Rows = append(t.Rows, []string{
			Dim(c.ID),
			name,
			RiskIndicator(c.RiskLevel),
			strconv.Itoa(open),
			FormatMoney(c.OutstandingAmount(), currency),
		})
	}
	b.WriteString(t.Render())

	var open []string
	for i := range ov.Clients {
		c := &ov.Clients[i]
		for j := range c.Incidents {
			inc := &c.Incidents[j]
			if inc.Resolved {
				continue
			}
			open = append(open, incidentLine(c, inc, currency, ov))
		}
	}
	if len(open) > 0 {
		b.WriteString("\n" + Header("Open incidents") + "\n")
		for _, l := range open {
			b.WriteString(l + "\n")
		}
	}

	s := ov.Stats
	fmt.Fprintf(&b, "\n%d of %d incidents resolved (%d%%)", s.ResolvedIncidents, s.TotalIncidents, s.ResolutionRate)
	if s.OverdueIncidents > 0 {
		b.WriteString(", " + StyleRed.Render(fmt.Sprintf("%d overdue", s.OverdueIncidents)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d high-risk clients, %s outstanding\n", s.HighRiskClients, FormatMoney(s.OutstandingAmount, currency))

	return RenderBox("Client risk", b.String())
}

func incidentLine(c *domain.RiskClient, inc *domain.Incident, currency string, ov *service.RiskOverview) string {
	kind := strings.ReplaceAll(strings.ToLower(string(inc.Type)), "_", " ")
	line := fmt.Sprintf("  %s %s %s", Dim(c.ID+"/"+inc.ID), c.Name+":", kind)
	if inc.Amount > 0 {
		line += " " + FormatMoney(inc.Amount, currency)
	}
	if inc.DueDate != "" {
		line += "  due " + DueLabel(inc.DueDate, domain.StatusPending, ov.AsOf)
	}
	if inc.Description != "" {
		line += "  " + Dim(inc.Description)
	}
	return line
}
