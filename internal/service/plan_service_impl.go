package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	core
}

func NewPlanService(uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) PlanService {
	return &planService{core: newCore(uow, clock, nil, observers)}
}

func (s *planService) Create(ctx context.Context, p *domain.Plan) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"short_id": p.ShortID}
	defer s.observe(ctx, "create-plan", startedAt, fields, &err)

	p.ShortID = strings.ToUpper(strings.TrimSpace(p.ShortID))
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Currency = strings.ToUpper(domain.CoalesceStr(p.Currency, "EUR"))
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		if _, err := plans.GetByShortID(ctx, p.ShortID); err == nil {
			return fmt.Errorf("plan %s already exists", p.ShortID)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return plans.Create(ctx, p)
	})
}

func (s *planService) Get(ctx context.Context, ref string) (*domain.Plan, error) {
	var plan *domain.Plan
	err := s.readTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		plan, err = resolvePlan(ctx, repository.NewSQLitePlanRepo(tx), ref)
		return err
	})
	return plan, err
}

func (s *planService) List(ctx context.Context) ([]PlanSummary, error) {
	var out []PlanSummary
	err := s.readTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans, err := repository.NewSQLitePlanRepo(tx).List(ctx)
		if err != nil {
			return err
		}
		recs := repository.NewSQLiteRecordRepo(tx)
		for _, p := range plans {
			counts, err := recs.Counts(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("counting records of %s: %w", p.ShortID, err)
			}
			out = append(out, PlanSummary{Plan: p, Counts: counts})
		}
		return nil
	})
	return out, err
}

func (s *planService) Rename(ctx context.Context, ref, name string) (plan *domain.Plan, err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": ref}
	defer s.observe(ctx, "rename-plan", startedAt, fields, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	err = s.planTx(ctx, ref, func(ctx context.Context, p *domain.Plan, _ repository.RecordRepo) error {
		p.Name = name
		plan = p
		return nil
	})
	return plan, err
}

func (s *planService) Delete(ctx context.Context, ref string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"plan": ref}
	defer s.observe(ctx, "delete-plan", startedAt, fields, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		p, err := resolvePlan(ctx, plans, ref)
		if err != nil {
			return err
		}
		return plans.Delete(ctx, p.ID)
	})
}
