package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/alexanderramin/atelier/internal/stats"
)

type riskService struct {
	core
}

func NewRiskService(uow db.UnitOfWork, clock Clock, ids adapter.IDGenerator, observers ...UseCaseObserver) RiskService {
	return &riskService{core: newCore(uow, clock, ids, observers)}
}

func (s *riskService) Overview(ctx context.Context, planRef string) (*RiskOverview, error) {
	now := s.now()
	var ov *RiskOverview
	err := s.planReadTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		clients, err := loadViews(ctx, recs, plan.ID, record.CollectionRiskClients, adapter.RiskClients, s.norm)
		if err != nil {
			return err
		}
		ov = &RiskOverview{
			Plan:    plan,
			Clients: clients,
			Stats:   stats.RiskClients(clients, now),
			AsOf:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

func (s *riskService) SaveClients(ctx context.Context, planRef string, changes []domain.RiskClient) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "changes": len(changes)}
	defer s.observe(ctx, "save-risk-clients", startedAt, fields, &err)

	now := s.now()
	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return mergeViews(ctx, recs, plan.ID, record.CollectionRiskClients, adapter.RiskClients, s.norm, changes, now)
	})
}

func (s *riskService) ResolveIncident(ctx context.Context, planRef, clientID, incidentID string) (client *domain.RiskClient, err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "client_id": clientID, "incident_id": incidentID}
	defer s.observe(ctx, "resolve-incident", startedAt, fields, &err)

	now := s.now()
	err = s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		c, err := updateView(ctx, recs, plan.ID, record.CollectionRiskClients, adapter.RiskClients, s.norm, clientID, now,
			func(c *domain.RiskClient) error {
				if !c.ResolveIncident(incidentID, now) {
					return fmt.Errorf("incident %q of client %q: %w", incidentID, clientID, repository.ErrNotFound)
				}
				return nil
			})
		if err != nil {
			return err
		}
		client = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *riskService) DeleteClient(ctx context.Context, planRef, clientID string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": planRef, "client_id": clientID}
	defer s.observe(ctx, "delete-risk-client", startedAt, fields, &err)

	return s.planTx(ctx, planRef, func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error {
		return removeRecord[record.RiskClient](ctx, recs, plan.ID, record.CollectionRiskClients, clientID)
	})
}
