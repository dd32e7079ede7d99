package domain

import "time"

type Incident struct {
	ID          string
	Type        IncidentType
	Description string
	Date        string
	DueDate     string
	Amount      float64
	Resolved    bool
	ResolvedAt  string
}

// IsOverdue reports whether an unresolved incident is past its due date.
func (i *Incident) IsOverdue(now time.Time) bool {
	if i.Resolved {
		return false
	}
	t, ok := ParseDate(i.DueDate)
	return ok && t.Before(now)
}

type RiskClient struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	RiskLevel RiskLevel
	Notes     string
	Incidents []Incident
	CreatedAt string
	UpdatedAt string
	View
}

// OutstandingAmount sums the amounts of unresolved incidents.
func (c *RiskClient) OutstandingAmount() float64 {
	var total float64
	for _, inc := range c.Incidents {
		if !inc.Resolved {
			total += inc.Amount
		}
	}
	return total
}

// ResolveIncident marks the incident resolved at now. It reports false when
// no incident has the given id.
func (c *RiskClient) ResolveIncident(id string, now time.Time) bool {
	for i := range c.Incidents {
		if c.Incidents[i].ID == id {
			c.Incidents[i].Resolved = true
			c.Incidents[i].ResolvedAt = FormatTimestamp(now)
			return true
		}
	}
	return false
}
