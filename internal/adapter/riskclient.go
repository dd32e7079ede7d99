package adapter

import (
	"math"
	"time"

	"github.com/alexanderramin/atelier/internal/codes"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
)

var RiskClients = New("client", riskClientView, riskClientRecord)

func riskClientView(n *Normalizer, r *record.RiskClient) domain.RiskClient {
	c := domain.RiskClient{
		ID:        n.ID("client", r.ID),
		Name:      domain.StrFromPtrs(r.Name, r.ClientName),
		Company:   domain.StrFromPtrs(r.Company),
		Email:     domain.StrFromPtrs(r.Email),
		Phone:     domain.StrFromPtrs(r.Phone),
		RiskLevel: codes.ParseRiskLevel(domain.StrFromPtrs(r.RiskLevel, r.Risk)),
		Notes:     domain.StrFromPtrs(r.Notes),
		Incidents: make([]domain.Incident, 0, len(r.Incidents)),
		CreatedAt: domain.StrFromPtrs(r.CreatedAt),
		UpdatedAt: domain.StrFromPtrs(r.UpdatedAt),
		View:      domain.NewView(),
	}
	for i := range r.Incidents {
		c.Incidents = append(c.Incidents, incidentView(n, &r.Incidents[i]))
	}
	return c
}

func riskClientRecord(v *domain.RiskClient, now time.Time) record.RiskClient {
	created, updated := stamps(v.CreatedAt, now)
	r := record.RiskClient{
		ID:        v.ID,
		Name:      domain.Ptr(v.Name),
		Company:   domain.PtrIfNonEmpty(v.Company),
		Email:     domain.PtrIfNonEmpty(v.Email),
		Phone:     domain.PtrIfNonEmpty(v.Phone),
		RiskLevel: domain.Ptr(codes.RiskLevelCode(v.RiskLevel)),
		Notes:     domain.PtrIfNonEmpty(v.Notes),
		CreatedAt: created,
		UpdatedAt: updated,
	}
	for i := range v.Incidents {
		r.Incidents = append(r.Incidents, incidentRecord(&v.Incidents[i]))
	}
	return r
}

func incidentResolved(r *record.Incident) bool {
	if r.Resolved != nil {
		return *r.Resolved
	}
	if r.Status != nil {
		return codes.ParseStatus(*r.Status) == domain.StatusCompleted
	}
	return false
}

func incidentView(n *Normalizer, r *record.Incident) domain.Incident {
	return domain.Incident{
		ID:          n.ID("incident", r.ID),
		Type:        codes.ParseIncidentType(domain.StrFromPtrs(r.Type, r.IncidentType)),
		Description: domain.StrFromPtrs(r.Description),
		Date:        domain.StrFromPtrs(r.Date, r.OccurredAt),
		DueDate:     domain.StrFromPtrs(r.DueDate),
		Amount:      math.Max(0, domain.Float64FromPtrWithDefault(0, r.Amount)),
		Resolved:    incidentResolved(r),
		ResolvedAt:  domain.StrFromPtrs(r.ResolvedAt),
	}
}

func incidentRecord(v *domain.Incident) record.Incident {
	r := record.Incident{
		ID:          v.ID,
		Type:        domain.Ptr(codes.IncidentTypeCode(v.Type)),
		Description: domain.PtrIfNonEmpty(v.Description),
		Date:        domain.PtrIfNonEmpty(v.Date),
		DueDate:     domain.PtrIfNonEmpty(v.DueDate),
		Amount:      optFloat(v.Amount),
		Resolved:    domain.Ptr(v.Resolved),
	}
	if v.Resolved {
		r.ResolvedAt = domain.PtrIfNonEmpty(v.ResolvedAt)
	}
	return r
}
