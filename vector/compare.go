// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Relational functions: element-wise equality and lexicographic ordering.

package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-stl/algo"
)

// Equal reports whether a and b have the same size and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return algo.Equal[T](a.Begin(), a.End(), b.Begin())
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	return algo.EqualFunc[T](a.Begin(), a.End(), b.Begin(), eq)
}

// Compare orders a and b lexicographically, returning -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) bool { return x < y })
}

// CompareFunc is Compare with a strict weak ordering supplied by the caller.
func CompareFunc[T any](a, b *Vector[T], less func(x, y T) bool) int {
	switch {
	case algo.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less):
		return -1
	case algo.LexicographicalCompareFunc[T](b.Begin(), b.End(), a.Begin(), a.End(), less):
		return 1
	default:
		return 0
	}
}

// Less reports a < b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return algo.LexicographicalCompare[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// LessEq reports a <= b.
func LessEq[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(b, a) }

// Greater reports a > b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Less(b, a) }

// GreaterEq reports a >= b.
func GreaterEq[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }
