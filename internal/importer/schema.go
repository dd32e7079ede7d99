package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/atelier/internal/record"
)

// PlanFile is the top-level JSON structure of a plan import file. Collection
// entries use the persisted record shape, legacy aliases included.
type PlanFile struct {
	Plan          PlanHeader               `json:"plan"`
	Milestones    []record.Milestone       `json:"milestones,omitempty"`
	Tasks         []record.Task            `json:"tasks,omitempty"`
	Canvas        []record.CanvasItem      `json:"canvas,omitempty"`
	Pricing       []record.PricingEntry    `json:"pricing,omitempty"`
	Segments      []record.CustomerSegment `json:"segments,omitempty"`
	Competitors   []record.Competitor      `json:"competitors,omitempty"`
	Opportunities []record.Opportunity     `json:"opportunities,omitempty"`
	Trends        []record.Trend           `json:"trends,omitempty"`
	RiskClients   []record.RiskClient      `json:"riskClients,omitempty"`
}

// PlanHeader defines the plan-level fields in the import file.
type PlanHeader struct {
	ShortID  string `json:"shortId"`
	Name     string `json:"name"`
	Owner    string `json:"owner,omitempty"`
	Activity string `json:"activity,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// LoadPlanFile reads path, checks it against the plan file JSON Schema and
// decodes it. Schema violations come back as a *SchemaError listing each
// problem.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanFile(data)
}

// ParsePlanFile is LoadPlanFile for an in-memory document.
func ParsePlanFile(data []byte) (*PlanFile, error) {
	if errs := ValidateDocument(data); len(errs) > 0 {
		return nil, &SchemaError{Errs: errs}
	}
	var f PlanFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &f, nil
}

// SchemaError reports every structural problem found in an import document.
type SchemaError struct {
	Errs []error
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("import file does not match schema (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		msg += "\n  - " + err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() []error {
	return e.Errs
}
