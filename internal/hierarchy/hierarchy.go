// Package hierarchy groups flat child collections under their parents.
package hierarchy

// Unassigned is the bucket for children whose parent reference is empty or
// names no known parent. It is a reserved id: a parent carrying it does not
// get a key of its own, and its children land in the shared Unassigned
// bucket. The importer rejects milestones with this id.
const Unassigned = "unassigned"

// Tree maps parent ids to their children. Keys lists the parent ids in input
// order followed by Unassigned.
type Tree[C any] struct {
	Keys    []string
	Buckets map[string][]C
}

// Build places every child in exactly one bucket, keeping the children's
// relative order. Every parent id gets a bucket even when it stays empty.
// Parents without an id or with the reserved Unassigned id are ignored.
func Build[C any, P any](children []C, parents []P, childParentRef func(C) string, parentID func(P) string) Tree[C] {
	t := Tree[C]{
		Keys:    make([]string, 0, len(parents)+1),
		Buckets: make(map[string][]C, len(parents)+1),
	}
	for _, p := range parents {
		id := parentID(p)
		if id == "" || id == Unassigned {
			continue
		}
		if _, dup := t.Buckets[id]; dup {
			continue
		}
		t.Keys = append(t.Keys, id)
		t.Buckets[id] = []C{}
	}
	t.Keys = append(t.Keys, Unassigned)
	t.Buckets[Unassigned] = []C{}

	for _, c := range children {
		ref := childParentRef(c)
		if _, ok := t.Buckets[ref]; !ok || ref == "" {
			ref = Unassigned
		}
		t.Buckets[ref] = append(t.Buckets[ref], c)
	}
	return t
}

// Lookup returns the children filed under id. ok is false for ids that are
// neither a known parent nor Unassigned.
func (t Tree[C]) Lookup(id string) ([]C, bool) {
	cs, ok := t.Buckets[id]
	return cs, ok
}

// Counts returns the number of children per key.
func (t Tree[C]) Counts() map[string]int {
	out := make(map[string]int, len(t.Buckets))
	for k, cs := range t.Buckets {
		out[k] = len(cs)
	}
	return out
}

// Len returns the total number of children across all buckets.
func (t Tree[C]) Len() int {
	n := 0
	for _, cs := range t.Buckets {
		n += len(cs)
	}
	return n
}
