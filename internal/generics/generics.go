// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"maps"
	"slices"
)

// SliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func SliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// MakeSet returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func MakeSet[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert keys into set.
func (s Set[T]) Insert(keys ...T) {
	for _, key := range keys {
		s[key] = struct{}{}
	}
}

// Sorted returns the elements of the set sorted by the given comparison function.
func (s Set[T]) Sorted(cmpFn func(a, b T) int) []T {
	return slices.SortedFunc(maps.Keys(s), cmpFn)
}

// Dedup returns the elements of in without repetitions, preserving the order of their first
// occurrence.
func Dedup[T comparable](in []T) []T {
	seen := MakeSet[T](len(in))
	out := make([]T, 0, len(in))
	for _, e := range in {
		if seen.Has(e) {
			continue
		}
		seen.Insert(e)
		out = append(out, e)
	}
	return out
}
