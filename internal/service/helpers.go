package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/reconcile"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
)

// Clock returns the reference time for a use case. A nil Clock means
// time.Now.
type Clock func() time.Time

// core holds the collaborators shared by every record-backed service.
type core struct {
	uow      db.UnitOfWork
	clock    Clock
	norm     *adapter.Normalizer
	observer UseCaseObserver
}

func newCore(uow db.UnitOfWork, clock Clock, ids adapter.IDGenerator, observers []UseCaseObserver) core {
	if clock == nil {
		clock = time.Now
	}
	if ids == nil {
		ids = adapter.TimestampIDs{Now: clock}
	}
	return core{
		uow:      uow,
		clock:    clock,
		norm:     adapter.NewNormalizer(ids),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (c core) now() time.Time {
	return c.clock().UTC()
}

// observe reports a finished use case. Call it deferred with a pointer to
// the named error result.
func (c core) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	c.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

// readTx runs fn in a read-only transaction when the unit of work offers
// one, and in a regular transaction otherwise.
func (c core) readTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if r, ok := c.uow.(interface {
		WithinReadTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	}); ok {
		return r.WithinReadTx(ctx, fn)
	}
	return c.uow.WithinTx(ctx, fn)
}

// planTx resolves ref inside a write transaction and hands fn the plan and
// a record repository bound to the same transaction. The plan's updated_at
// is bumped when fn succeeds.
func (c core) planTx(ctx context.Context, ref string, fn func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error) error {
	return c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		plan, err := resolvePlan(ctx, plans, ref)
		if err != nil {
			return err
		}
		if err := fn(ctx, plan, repository.NewSQLiteRecordRepo(tx)); err != nil {
			return err
		}
		plan.UpdatedAt = c.now()
		return plans.Update(ctx, plan)
	})
}

// planReadTx is planTx for read-only use cases.
func (c core) planReadTx(ctx context.Context, ref string, fn func(ctx context.Context, plan *domain.Plan, recs repository.RecordRepo) error) error {
	return c.readTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plan, err := resolvePlan(ctx, repository.NewSQLitePlanRepo(tx), ref)
		if err != nil {
			return err
		}
		return fn(ctx, plan, repository.NewSQLiteRecordRepo(tx))
	})
}

// resolvePlan looks a plan up by short id, then by full id.
func resolvePlan(ctx context.Context, plans repository.PlanRepo, ref string) (*domain.Plan, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("no plan selected (pass --plan or set ATELIER_PLAN)")
	}
	p, err := plans.GetByShortID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	p, err = plans.GetByID(ctx, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("plan %q: %w", ref, repository.ErrNotFound)
	}
	return p, err
}

// loadViews reads collection c and normalizes every record.
func loadViews[R any, V any](ctx context.Context, recs repository.RecordRepo, planID string, c record.Collection, a adapter.Adapter[R, V], n *adapter.Normalizer) ([]V, error) {
	rs, err := repository.LoadCollection[R](ctx, recs, planID, c)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c, err)
	}
	return a.NormalizeAll(n, rs), nil
}

// mergeViews serializes changes and merges them into the stored collection
// by id. Views without an id are stored as new records.
func mergeViews[R record.Keyed, V any](ctx context.Context, recs repository.RecordRepo, planID string, c record.Collection, a adapter.Adapter[R, V], n *adapter.Normalizer, changes []V, now time.Time) error {
	base, err := repository.LoadCollection[R](ctx, recs, planID, c)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c, err)
	}
	patch := a.Canonicalize(n, a.SerializeAll(changes, now), now)
	if err := repository.SaveCollection(ctx, recs, planID, c, reconcile.MergeByID(base, patch)); err != nil {
		return fmt.Errorf("saving %s: %w", c, err)
	}
	return nil
}

// updateView applies mutate to the record with the given id and writes it
// back in place. The mutated view is returned.
func updateView[R record.Keyed, V any](ctx context.Context, recs repository.RecordRepo, planID string, c record.Collection, a adapter.Adapter[R, V], n *adapter.Normalizer, id string, now time.Time, mutate func(v *V) error) (V, error) {
	var zero V
	base, err := repository.LoadCollection[R](ctx, recs, planID, c)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", c, err)
	}
	r, ok := reconcile.Find(base, id)
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", a.Kind, id, repository.ErrNotFound)
	}
	v := a.Normalize(n, &r)
	if err := mutate(&v); err != nil {
		return zero, err
	}
	updated, _ := reconcile.Replace(base, a.Serialize(v, now))
	if err := repository.SaveCollection(ctx, recs, planID, c, updated); err != nil {
		return zero, fmt.Errorf("saving %s: %w", c, err)
	}
	return v, nil
}

// removeRecord deletes the record with the given id from collection c.
func removeRecord[R record.Keyed](ctx context.Context, recs repository.RecordRepo, planID string, c record.Collection, id string) error {
	base, err := repository.LoadCollection[R](ctx, recs, planID, c)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c, err)
	}
	rest, ok := reconcile.Remove(base, id)
	if !ok {
		return fmt.Errorf("%s record %q: %w", c, id, repository.ErrNotFound)
	}
	if err := repository.SaveCollection(ctx, recs, planID, c, rest); err != nil {
		return fmt.Errorf("saving %s: %w", c, err)
	}
	return nil
}

// formatValidationErrors joins errs under one header line, one problem per
// line. The individual errors stay reachable through errors.Is and As.
func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
