package stats

import (
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
)

type RiskClientStats struct {
	TotalClients      int
	ClientsByRisk     map[domain.RiskLevel]int
	HighRiskClients   int
	TotalIncidents    int
	OpenIncidents     int
	ResolvedIncidents int
	OverdueIncidents  int
	ResolutionRate    int
	IncidentsByType   map[domain.IncidentType]int
	OutstandingAmount float64
}

// RiskClients aggregates clients and their incidents. HighRiskClients counts
// HIGH and CRITICAL clients.
func RiskClients(clients []domain.RiskClient, now time.Time) RiskClientStats {
	s := RiskClientStats{
		TotalClients:    len(clients),
		ClientsByRisk:   map[domain.RiskLevel]int{},
		IncidentsByType: map[domain.IncidentType]int{},
	}
	for i := range clients {
		c := &clients[i]
		s.ClientsByRisk[c.RiskLevel]++
		if c.RiskLevel == domain.RiskHigh || c.RiskLevel == domain.RiskCritical {
			s.HighRiskClients++
		}
		s.OutstandingAmount += c.OutstandingAmount()
		for j := range c.Incidents {
			inc := &c.Incidents[j]
			s.TotalIncidents++
			s.IncidentsByType[inc.Type]++
			if inc.Resolved {
				s.ResolvedIncidents++
			} else {
				s.OpenIncidents++
			}
			if inc.IsOverdue(now) {
				s.OverdueIncidents++
			}
		}
	}
	s.ResolutionRate = Rate(s.ResolvedIncidents, s.TotalIncidents)
	return s
}
