// Package codes translates between the canonical enums in package domain and
// the loosely-typed string codes found in persisted records.
//
// Every family has a Parse function that accepts canonical codes, enum names,
// legacy codes and French labels in any case or separator style, falling back
// to a documented default, and a Code function that returns exactly one
// canonical code per enum value.
package codes

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldKey reduces a code to its comparison key: case-folded, accents
// stripped, and only letters and digits kept, so "In-Progress",
// "in_progress" and "IN PROGRESS" share a key.
func foldKey(s string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// table holds one enum family.
type table[T ~string] struct {
	fallback  T
	canonical map[T]string
	lookup    map[string]T
}

func newTable[T ~string](fallback T, canonical map[T]string, synonyms map[T][]string) *table[T] {
	t := &table[T]{
		fallback:  fallback,
		canonical: canonical,
		lookup:    make(map[string]T, len(canonical)*4),
	}
	for v, code := range canonical {
		t.lookup[foldKey(code)] = v
		t.lookup[foldKey(string(v))] = v
	}
	for v, syns := range synonyms {
		for _, s := range syns {
			t.lookup[foldKey(s)] = v
		}
	}
	return t
}

func (t *table[T]) find(s string) (T, bool) {
	key := foldKey(s)
	if key == "" {
		return t.fallback, false
	}
	v, ok := t.lookup[key]
	if !ok {
		return t.fallback, false
	}
	return v, true
}

func (t *table[T]) parse(s string) T {
	v, _ := t.find(s)
	return v
}

func (t *table[T]) code(v T) string {
	if c, ok := t.canonical[v]; ok {
		return c
	}
	return t.canonical[t.fallback]
}

func (t *table[T]) codes() []string {
	out := make([]string, 0, len(t.canonical))
	for _, c := range t.canonical {
		out = append(out, c)
	}
	return out
}
