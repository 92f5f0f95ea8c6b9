package slices

import (
	"cmp"
	"slices"
)

// Sorted is like slices.Sort but returns sorted copy of given slice
func Sorted[S ~[]T, T cmp.Ordered](s S) S {
	s2 := slices.Clone(s)
	slices.Sort(s2)
	return s2
}

// SortedBy returns a copy of given slice sorted in ascending order of sortKey.
// Elements with equal keys keep their relative order.
func SortedBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) S {
	x2 := slices.Clone(x)
	SortStableBy(x2, sortKey)
	return x2
}

// SortedDescBy is like SortedBy, but sorts in descending order.
func SortedDescBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) S {
	x2 := slices.Clone(x)
	SortDescStableBy(x2, sortKey)
	return x2
}

// SortStableBy sorts a slice in place using given sortKey, uses stable sorting
func SortStableBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) {
	slices.SortStableFunc(x, byKey(sortKey))
}

// SortDescStableBy sorts a slice in place using given sortKey in descending order, uses stable sorting
func SortDescStableBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) {
	slices.SortStableFunc(x, desc(byKey(sortKey)))
}

func byKey[E any, U cmp.Ordered](sortKey func(E) U) func(a, b E) int {
	return func(a, b E) int { return cmp.Compare(sortKey(a), sortKey(b)) }
}

func desc[E any](compare func(a, b E) int) func(a, b E) int {
	return func(a, b E) int { return compare(b, a) }
}
