package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

type PlanOption func(*domain.Plan)

func WithShortID(id string) PlanOption {
	return func(p *domain.Plan) {
		p.ShortID = id
	}
}

func WithOwner(owner string) PlanOption {
	return func(p *domain.Plan) {
		p.Owner = owner
	}
}

func WithCreatedAt(t time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestPlan(name string, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Plan{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		Currency:  "EUR",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type TaskOption func(*record.Task)

func WithMilestone(id string) TaskOption {
	return func(t *record.Task) {
		t.MilestoneID = &id
	}
}

func WithTaskStatus(status string) TaskOption {
	return func(t *record.Task) {
		t.Status = &status
	}
}

func WithTaskDue(date string) TaskOption {
	return func(t *record.Task) {
		t.DueDate = &date
	}
}

func WithPriority(p string) TaskOption {
	return func(t *record.Task) {
		t.Priority = &p
	}
}

func NewTestTask(id, title string, opts ...TaskOption) record.Task {
	t := record.Task{ID: id, Title: &title}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type MilestoneOption func(*record.Milestone)

func WithCompleted(done bool) MilestoneOption {
	return func(m *record.Milestone) {
		m.IsCompleted = &done
	}
}

func WithMilestoneDue(date string) MilestoneOption {
	return func(m *record.Milestone) {
		m.DueDate = &date
	}
}

func NewTestMilestone(id, title string, opts ...MilestoneOption) record.Milestone {
	m := record.Milestone{ID: id, Title: &title}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func NewTestCompetitor(id, name, threat string, weaknesses ...string) record.Competitor {
	return record.Competitor{ID: id, Name: &name, ThreatLevel: &threat, Weaknesses: weaknesses}
}

func NewTestRiskClient(id, name string, incidents ...record.Incident) record.RiskClient {
	return record.RiskClient{ID: id, Name: &name, Incidents: incidents}
}
