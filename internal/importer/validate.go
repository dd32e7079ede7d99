package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/record"
)

// ValidatePlanFile checks cross-record rules the JSON Schema cannot express.
// Returns a slice of all validation errors found.
func ValidatePlanFile(f *PlanFile) []error {
	var errs []error

	errs = append(errs, validatePlan(&f.Plan)...)

	errs = append(errs, validateMilestones(f.Milestones)...)
	errs = append(errs, validateTasks(f.Tasks)...)

	errs = append(errs, uniqueIDs("canvas", f.Canvas)...)
	errs = append(errs, validatePricing(f.Pricing)...)
	errs = append(errs, uniqueIDs("segments", f.Segments)...)
	errs = append(errs, uniqueIDs("competitors", f.Competitors)...)
	errs = append(errs, uniqueIDs("opportunities", f.Opportunities)...)
	errs = append(errs, uniqueIDs("trends", f.Trends)...)
	errs = append(errs, validateRiskClients(f.RiskClients)...)

	return errs
}

func validatePlan(h *PlanHeader) []error {
	var errs []error

	p := domain.Plan{ShortID: strings.ToUpper(strings.TrimSpace(h.ShortID))}
	if err := p.ValidateShortID(); err != nil {
		errs = append(errs, fmt.Errorf("plan.shortId: %w", err))
	}
	if strings.TrimSpace(h.Name) == "" {
		errs = append(errs, fmt.Errorf("plan.name is required"))
	}

	return errs
}

func validateMilestones(ms []record.Milestone) []error {
	errs := uniqueIDs("milestones", ms)
	for i := range ms {
		prefix := fmt.Sprintf("milestones[%d]", i)
		if strings.EqualFold(strings.TrimSpace(ms[i].ID), hierarchy.Unassigned) {
			errs = append(errs, fmt.Errorf("%s.id: %q is reserved", prefix, ms[i].ID))
		}
		errs = append(errs, validateOptionalDate(prefix+".dueDate", ms[i].DueDate)...)
		if ms[i].Progress != nil && (*ms[i].Progress < 0 || *ms[i].Progress > 100) {
			errs = append(errs, fmt.Errorf("%s.progress: %v is outside 0-100", prefix, *ms[i].Progress))
		}
	}
	return errs
}

func validateTasks(tasks []record.Task) []error {
	errs := uniqueIDs("tasks", tasks)
	ids := make(map[string]bool, len(tasks))
	for i := range tasks {
		if tasks[i].ID != "" {
			ids[tasks[i].ID] = true
		}
	}

	for i := range tasks {
		t := &tasks[i]
		prefix := fmt.Sprintf("tasks[%d]", i)

		deps := t.Dependencies
		if deps == nil {
			deps = t.DependsOn
		}
		for _, dep := range deps {
			switch {
			case dep == "":
				errs = append(errs, fmt.Errorf("%s.dependencies: empty id", prefix))
			case dep == t.ID:
				errs = append(errs, fmt.Errorf("%s.dependencies: task %q depends on itself", prefix, dep))
			case !ids[dep]:
				errs = append(errs, fmt.Errorf("%s.dependencies: task %q not found", prefix, dep))
			}
		}

		errs = append(errs, validateOptionalDate(prefix+".dueDate", t.DueDate)...)
		if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimatedHours cannot be negative", prefix))
		}
	}
	return errs
}

func validatePricing(entries []record.PricingEntry) []error {
	errs := uniqueIDs("pricing", entries)
	for i := range entries {
		p := &entries[i]
		if p.MinPrice != nil && p.MaxPrice != nil && *p.MinPrice > *p.MaxPrice {
			errs = append(errs, fmt.Errorf("pricing[%d]: minPrice (%v) must be <= maxPrice (%v)", i, *p.MinPrice, *p.MaxPrice))
		}
	}
	return errs
}

func validateRiskClients(clients []record.RiskClient) []error {
	errs := uniqueIDs("riskClients", clients)
	for i := range clients {
		seen := make(map[string]bool)
		for j, inc := range clients[i].Incidents {
			prefix := fmt.Sprintf("riskClients[%d].incidents[%d]", i, j)
			if inc.ID != "" {
				if seen[inc.ID] {
					errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, inc.ID))
				}
				seen[inc.ID] = true
			}
			errs = append(errs, validateOptionalDate(prefix+".dueDate", inc.DueDate)...)
		}
	}
	return errs
}

// uniqueIDs reports repeated non-empty ids. Records without an id get one
// during conversion.
func uniqueIDs[T record.Keyed](collection string, items []T) []error {
	var errs []error
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		id := it.Key()
		if id == "" {
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("%s[%d].id: duplicate id %q", collection, i, id))
		}
		seen[id] = true
	}
	return errs
}

func validateOptionalDate(field string, s *string) []error {
	if s == nil || *s == "" {
		return nil
	}
	if _, ok := domain.ParseDate(*s); !ok {
		return []error{fmt.Errorf("%s: invalid date format %q (expected ISO-8601)", field, *s)}
	}
	return nil
}
