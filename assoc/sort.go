package assoc

import (
	"slices"

	"facette.io/natsort"
)

// SortFunc reorders the live pairs by key using cmp, which returns a negative
// number when a sorts before b, a positive number when it sorts after, and zero
// otherwise. The sort is stable. Indices returned by Find before the call are
// no longer valid afterwards.
func (s *KeyedSequence[K, V]) SortFunc(cmp func(a, b K) int) {
	slices.SortStableFunc(s.pairs[:s.count], func(a, b Pair[K, V]) int {
		return cmp(a.key, b.key)
	})
}

// SortNatural reorders a string-keyed sequence into natural order, where runs
// of digits compare by numeric value ("item2" before "item10").
func SortNatural[V any](s *KeyedSequence[string, V]) {
	s.SortFunc(compareNatural)
}

func compareNatural(a, b string) int {
	switch {
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}
