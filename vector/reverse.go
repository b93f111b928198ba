// File: vector/reverse.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reverse adaptor over the random-access cursor.

package vector

import "github.com/momentics/hioload-stl/api"

// ReverseIterator walks a vector back to front. It stores a forward
// position and refers to the element just before it, so RBegin wraps End
// and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// NewReverseIterator wraps a forward iterator.
func NewReverseIterator[T any](base Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: base}
}

// Base returns the wrapped forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Category reports api.RandomAccess.
func (r ReverseIterator[T]) Category() api.Category { return api.RandomAccess }

// Value returns the element before the wrapped position.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Ptr returns a pointer to the element before the wrapped position.
func (r ReverseIterator[T]) Ptr() *T { return r.base.Prev().Ptr() }

// Set assigns v to the element before the wrapped position.
func (r ReverseIterator[T]) Set(v T) { r.base.Prev().Set(v) }

// At returns the element n steps further along the reverse direction.
func (r ReverseIterator[T]) At(n int) T { return r.Add(n).Value() }

// Next moves toward the front of the vector.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

// Prev moves toward the back of the vector.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

// Add moves n steps toward the front of the vector.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Sub(n)}
}

// Sub moves n steps toward the back of the vector.
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(n)}
}

// Diff returns the signed reverse distance r - other.
func (r ReverseIterator[T]) Diff(other ReverseIterator[T]) int {
	return other.base.Diff(r.base)
}

// Eq reports whether both wrap the same forward position.
func (r ReverseIterator[T]) Eq(other ReverseIterator[T]) bool { return r.base.Eq(other.base) }

// Ne is the negation of Eq.
func (r ReverseIterator[T]) Ne(other ReverseIterator[T]) bool { return !r.Eq(other) }

// Less reports whether r comes first in reverse order.
func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool { return other.base.Less(r.base) }

// LessEq reports whether r does not come after other in reverse order.
func (r ReverseIterator[T]) LessEq(other ReverseIterator[T]) bool { return other.base.LessEq(r.base) }

// Greater reports whether r comes after other in reverse order.
func (r ReverseIterator[T]) Greater(other ReverseIterator[T]) bool { return other.base.Greater(r.base) }

// GreaterEq reports whether r does not come first in reverse order.
func (r ReverseIterator[T]) GreaterEq(other ReverseIterator[T]) bool {
	return other.base.GreaterEq(r.base)
}

var _ api.RandomAccessIterator[int, ReverseIterator[int]] = ReverseIterator[int]{}
