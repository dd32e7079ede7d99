package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/atelier/internal/record"
)

// LoadCollection decodes every stored document of c into T, in order.
func LoadCollection[T any](ctx context.Context, repo RecordRepo, planID string, c record.Collection) ([]T, error) {
	docs, err := repo.List(ctx, planID, c)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Body, &v); err != nil {
			return nil, fmt.Errorf("decoding %s record %q: %w", c, d.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// SaveCollection encodes items and replaces the stored collection with them.
func SaveCollection[T record.Keyed](ctx context.Context, repo RecordRepo, planID string, c record.Collection, items []T) error {
	docs := make([]Document, 0, len(items))
	for _, it := range items {
		body, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("encoding %s record %q: %w", c, it.Key(), err)
		}
		docs = append(docs, Document{ID: it.Key(), Body: body})
	}
	return repo.Replace(ctx, planID, c, docs)
}
