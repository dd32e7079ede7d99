package reconcile

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/atelier/internal/record"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func collection(prefix string, n int) []record.Trend {
	out := make([]record.Trend, n)
	for i := range out {
		title := fmt.Sprintf("%s title %d", prefix, i)
		out[i] = record.Trend{ID: fmt.Sprintf("%s-%d", prefix, i), Title: &title}
	}
	return out
}

func TestMergeByID_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("only-new changes are appended in order", prop.ForAll(
		func(nBase, nNew int) bool {
			base := collection("base", nBase)
			changes := collection("new", nNew)
			got := MergeByID(base, changes)
			if len(got) != nBase+nNew {
				return false
			}
			for i := range base {
				if got[i].ID != base[i].ID {
					return false
				}
			}
			for i := range changes {
				if got[nBase+i].ID != changes[i].ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20), gen.IntRange(0, 20),
	))

	properties.Property("a matching change replaces only its record", prop.ForAll(
		func(nBase, pick int) bool {
			base := collection("base", nBase)
			i := pick % nBase
			title := "changed"
			got := MergeByID(base, []record.Trend{{ID: base[i].ID, Title: &title}})
			if len(got) != nBase {
				return false
			}
			for j := range base {
				if j == i {
					if *got[j].Title != "changed" {
						return false
					}
				} else if got[j].Title != base[j].Title {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20), gen.IntRange(0, 100),
	))

	properties.Property("remove after upsert of a new id restores the base", prop.ForAll(
		func(nBase int) bool {
			base := collection("base", nBase)
			added, replaced := Upsert(base, record.Trend{ID: "extra"})
			restored, ok := Remove(added, "extra")
			if replaced || !ok || len(restored) != len(base) {
				return false
			}
			for i := range base {
				if restored[i].ID != base[i].ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
