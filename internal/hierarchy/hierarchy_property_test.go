package hierarchy

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type child struct {
	id     string
	parent string
}

// TestBuild_ConservesChildren checks that the buckets together hold exactly
// the input children, each once.
func TestBuild_ConservesChildren(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("union of buckets equals the input multiset", prop.ForAll(
		func(refs []int, nParents int) bool {
			parents := make([]string, nParents)
			for i := range parents {
				parents[i] = fmt.Sprintf("p%d", i)
			}
			children := make([]child, len(refs))
			for i, r := range refs {
				children[i] = child{id: fmt.Sprintf("c%d", i%7), parent: fmt.Sprintf("p%d", r)}
			}

			tree := Build(children, parents,
				func(c child) string { return c.parent },
				func(p string) string { return p },
			)

			var want, got []string
			for _, c := range children {
				want = append(want, c.id+"/"+c.parent)
			}
			for _, k := range tree.Keys {
				cs, ok := tree.Lookup(k)
				if !ok {
					return false
				}
				for _, c := range cs {
					got = append(got, c.id+"/"+c.parent)
				}
			}
			sort.Strings(want)
			sort.Strings(got)
			return fmt.Sprint(want) == fmt.Sprint(got) && len(tree.Keys) == nParents+1
		},
		gen.SliceOf(gen.IntRange(0, 8)), gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}
