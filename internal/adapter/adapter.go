// Package adapter converts between persisted records and view records.
//
// Each entity has one Adapter built from a pair of conversion functions. The
// Adapter owns the shared rules: nil input normalizes to a complete default
// record, collections normalize to non-nil slices, and serialization stamps
// the update time from an explicit now.
package adapter

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces synthetic ids for records that arrive without one.
type IDGenerator interface {
	NewID(kind string) string
}

// TimestampIDs generates "<kind>-<unix millis>-<random>" ids.
type TimestampIDs struct {
	Now func() time.Time
}

func (g TimestampIDs) NewID(kind string) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", kind, now().UnixMilli(), suffix)
}

// SequenceIDs generates "<kind>-<n>" ids from a shared counter. Intended for
// tests and fixtures that need reproducible ids.
type SequenceIDs struct {
	n atomic.Int64
}

func (g *SequenceIDs) NewID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, g.n.Add(1))
}

// Normalizer carries the capabilities conversion functions need.
type Normalizer struct {
	ids IDGenerator
}

// NewNormalizer returns a Normalizer using ids, or TimestampIDs when ids is nil.
func NewNormalizer(ids IDGenerator) *Normalizer {
	if ids == nil {
		ids = TimestampIDs{}
	}
	return &Normalizer{ids: ids}
}

// ID returns id unchanged, or a fresh synthetic id of the given kind when id
// is empty.
func (n *Normalizer) ID(kind, id string) string {
	if id != "" {
		return id
	}
	return n.ids.NewID(kind)
}

// Adapter is the conversion descriptor for one entity.
type Adapter[R any, V any] struct {
	Kind     string
	toView   func(n *Normalizer, r *R) V
	toRecord func(v *V, now time.Time) R
}

// New builds an Adapter from its conversion functions. toView never receives
// a nil record.
func New[R any, V any](kind string, toView func(n *Normalizer, r *R) V, toRecord func(v *V, now time.Time) R) Adapter[R, V] {
	return Adapter[R, V]{Kind: kind, toView: toView, toRecord: toRecord}
}

// Normalize converts r into a fully-defaulted view record. A nil r yields the
// empty default record.
func (a Adapter[R, V]) Normalize(n *Normalizer, r *R) V {
	if r == nil {
		r = new(R)
	}
	return a.toView(n, r)
}

// NormalizeAll converts every record, preserving order. The result is never nil.
func (a Adapter[R, V]) NormalizeAll(n *Normalizer, rs []R) []V {
	out := make([]V, 0, len(rs))
	for i := range rs {
		out = append(out, a.toView(n, &rs[i]))
	}
	return out
}

// Serialize converts a view record back to its persisted shape, stamping
// updatedAt with now.
func (a Adapter[R, V]) Serialize(v V, now time.Time) R {
	return a.toRecord(&v, now)
}

// SerializeAll serializes every view record, preserving order.
func (a Adapter[R, V]) SerializeAll(vs []V, now time.Time) []R {
	out := make([]R, 0, len(vs))
	for i := range vs {
		out = append(out, a.toRecord(&vs[i], now))
	}
	return out
}

// Canonicalize rewrites persisted records in canonical form: legacy aliases
// folded into their canonical fields, defaults filled and missing ids
// assigned.
func (a Adapter[R, V]) Canonicalize(n *Normalizer, rs []R, now time.Time) []R {
	return a.SerializeAll(a.NormalizeAll(n, rs), now)
}

// stamps returns the createdAt/updatedAt pair to persist.
func stamps(createdAt string, now time.Time) (*string, *string) {
	updated := now.UTC().Format(time.RFC3339)
	created := createdAt
	if created == "" {
		created = updated
	}
	return &created, &updated
}

func optFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func optStrings(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
