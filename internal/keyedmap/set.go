package keyedmap

import (
	"slices"

	"github.com/roach88/sandbox/internal/ir"
)

// Set is an unordered collection of distinct strings.
type Set struct {
	items map[string]struct{}
}

func newSet(items ...string) Set {
	s := Set{items: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set.
func (s Set) Has(item string) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items.
func (s Set) Len() int {
	return len(s.items)
}

// Sorted returns the items in ordinal ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	slices.SortFunc(out, ir.Compare)
	return out
}
