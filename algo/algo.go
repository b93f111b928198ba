// File: algo/algo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic algorithms over api iterator ranges. A range is the half-open
// pair [first, last) of cursors of the same type.

package algo

import (
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-stl/api"
)

// distancer is the random-access subset Distance needs.
type distancer[I any] interface {
	Diff(other I) int
}

// advancer is the random-access subset Advance needs.
type advancer[I any] interface {
	Add(n int) I
}

// Equal reports whether [first1, last1) equals the range of the same length
// starting at first2.
func Equal[T comparable, I1 api.InputIterator[T, I1], I2 api.InputIterator[T, I2]](first1, last1 I1, first2 I2) bool {
	return EqualFunc[T](first1, last1, first2, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any, I1 api.InputIterator[T, I1], I2 api.InputIterator[T, I2]](first1, last1 I1, first2 I2, eq func(a, b T) bool) bool {
	for ; !first1.Eq(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Value(), first2.Value()) {
			return false
		}
	}
	return true
}

// LexicographicalCompare reports whether [first1, last1) orders before
// [first2, last2). A proper prefix orders before the longer range.
func LexicographicalCompare[T constraints.Ordered, I1 api.InputIterator[T, I1], I2 api.InputIterator[T, I2]](first1, last1 I1, first2, last2 I2) bool {
	return LexicographicalCompareFunc[T](first1, last1, first2, last2, func(a, b T) bool { return a < b })
}

// LexicographicalCompareFunc is LexicographicalCompare with a strict weak
// ordering supplied by the caller.
func LexicographicalCompareFunc[T any, I1 api.InputIterator[T, I1], I2 api.InputIterator[T, I2]](first1, last1 I1, first2, last2 I2, less func(a, b T) bool) bool {
	for ; !first1.Eq(last1); first1, first2 = first1.Next(), first2.Next() {
		if first2.Eq(last2) {
			return false
		}
		a, b := first1.Value(), first2.Value()
		if less(b, a) {
			return false
		}
		if less(a, b) {
			return true
		}
	}
	return !first2.Eq(last2)
}

// Distance returns the number of steps from first to last. Random-access
// cursors answer in O(1); everything else is walked.
func Distance[T any, I api.InputIterator[T, I]](first, last I) int {
	if first.Category().Satisfies(api.RandomAccess) {
		if d, ok := any(last).(distancer[I]); ok {
			return d.Diff(first)
		}
	}
	n := 0
	for ; !first.Eq(last); first = first.Next() {
		n++
	}
	return n
}

// Advance moves it forward by n steps. Negative n requires a bidirectional
// cursor; for forward-only cursors a negative n leaves it unchanged.
func Advance[T any, I api.InputIterator[T, I]](it I, n int) I {
	if it.Category().Satisfies(api.RandomAccess) {
		if a, ok := any(it).(advancer[I]); ok {
			return a.Add(n)
		}
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	if n < 0 && it.Category().Satisfies(api.Bidirectional) {
		for ; n < 0; n++ {
			b, ok := any(it).(interface{ Prev() I })
			if !ok {
				break
			}
			it = b.Prev()
		}
	}
	return it
}

// Copy writes [first, last) through out and returns out advanced past the
// last written element.
func Copy[T any, I api.InputIterator[T, I], O api.OutputIterator[T, O]](first, last I, out O) O {
	for ; !first.Eq(last); first = first.Next() {
		out.Set(first.Value())
		out = out.Next()
	}
	return out
}

// Fill assigns v to every position of [first, last). The cursor type must
// also be writable.
func Fill[T any, I interface {
	api.InputIterator[T, I]
	Set(v T)
}](first, last I, v T) {
	for ; !first.Eq(last); first = first.Next() {
		first.Set(v)
	}
}

// Find returns the first position in [first, last) holding v, or last.
func Find[T comparable, I api.InputIterator[T, I]](first, last I, v T) I {
	return FindIf[T](first, last, func(x T) bool { return x == v })
}

// FindIf returns the first position in [first, last) satisfying pred, or last.
func FindIf[T any, I api.InputIterator[T, I]](first, last I, pred func(T) bool) I {
	for ; !first.Eq(last); first = first.Next() {
		if pred(first.Value()) {
			return first
		}
	}
	return first
}
