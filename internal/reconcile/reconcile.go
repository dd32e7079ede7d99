// Package reconcile merges changed records into persisted collections by id.
//
// All functions return a new slice and never modify their inputs. Records
// with an empty id have no identity and are always appended as new.
package reconcile

import "github.com/alexanderramin/atelier/internal/record"

// MergeByID applies changes onto base. Records already in base keep their
// position and are overwritten by the last change carrying the same id. New
// ids are appended in the order they first appear in changes. Base records
// not named in changes are returned unmodified.
func MergeByID[T record.Keyed](base, changes []T) []T {
	out := make([]T, len(base), len(base)+len(changes))
	copy(out, base)

	index := make(map[string]int, len(base)+len(changes))
	for i, r := range out {
		if k := r.Key(); k != "" {
			if _, seen := index[k]; !seen {
				index[k] = i
			}
		}
	}

	for _, c := range changes {
		k := c.Key()
		if k == "" {
			out = append(out, c)
			continue
		}
		if i, ok := index[k]; ok {
			out[i] = c
			continue
		}
		index[k] = len(out)
		out = append(out, c)
	}
	return out
}

// Upsert merges a single record. It reports whether an existing record was
// replaced rather than appended.
func Upsert[T record.Keyed](base []T, r T) ([]T, bool) {
	replaced := r.Key() != "" && indexOf(base, r.Key()) >= 0
	return MergeByID(base, []T{r}), replaced
}

// Replace overwrites the record with r's id. When no such record exists the
// base is returned as a copy and ok is false.
func Replace[T record.Keyed](base []T, r T) ([]T, bool) {
	i := indexOf(base, r.Key())
	out := make([]T, len(base))
	copy(out, base)
	if i < 0 {
		return out, false
	}
	out[i] = r
	return out, true
}

// Remove drops every record with the given id. ok is false when none matched.
func Remove[T record.Keyed](base []T, id string) ([]T, bool) {
	out := make([]T, 0, len(base))
	removed := false
	for _, r := range base {
		if id != "" && r.Key() == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

// Find returns the record with the given id.
func Find[T record.Keyed](base []T, id string) (T, bool) {
	if i := indexOf(base, id); i >= 0 {
		return base[i], true
	}
	var zero T
	return zero, false
}

func indexOf[T record.Keyed](base []T, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range base {
		if r.Key() == id {
			return i
		}
	}
	return -1
}
