// File: list/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Relational functions over lists.

package list

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-stl/algo"
)

// Equal reports whether a and b have the same size and equal elements.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return algo.Equal[T](a.Begin(), a.End(), b.Begin())
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	return algo.EqualFunc[T](a.Begin(), a.End(), b.Begin(), eq)
}

// Compare orders a and b lexicographically, returning -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, func(x, y T) bool { return x < y })
}

// CompareFunc is Compare with a strict weak ordering supplied by the caller.
func CompareFunc[T any](a, b *List[T], less func(x, y T) bool) int {
	if algo.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less) {
		return -1
	}
	if algo.LexicographicalCompareFunc[T](b.Begin(), b.End(), a.Begin(), a.End(), less) {
		return 1
	}
	return 0
}

func Less[T constraints.Ordered](a, b *List[T]) bool {
	return algo.LexicographicalCompare[T](a.Begin(), a.End(), b.Begin(), b.End())
}

func LessEq[T constraints.Ordered](a, b *List[T]) bool { return !Less(b, a) }

func Greater[T constraints.Ordered](a, b *List[T]) bool { return Less(b, a) }

func GreaterEq[T constraints.Ordered](a, b *List[T]) bool { return !Less(a, b) }
