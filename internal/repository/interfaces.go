package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/record"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

// Document is one stored record body in collection order.
type Document struct {
	ID   string
	Body []byte
}

// RecordRepo stores each plan collection as an ordered list of JSON
// documents keyed by record id.
type RecordRepo interface {
	List(ctx context.Context, planID string, c record.Collection) ([]Document, error)
	// Replace overwrites the whole collection with docs, in order.
	Replace(ctx context.Context, planID string, c record.Collection, docs []Document) error
	Counts(ctx context.Context, planID string) (map[record.Collection]int, error)
}
