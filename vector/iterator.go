// File: vector/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Random-access cursor over a vector's block.

package vector

import (
	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/internal/assert"
)

// Iterator is a position inside the block of the vector that issued it. It
// owns nothing and performs no bounds checking outside debug builds.
type Iterator[T any] struct {
	buf []T
	pos int
	blk *blockState[T]
}

// check validates the iterator in debug builds. deref additionally requires
// a live element at the position.
func (it Iterator[T]) check(deref bool) {
	if !assert.Enabled {
		return
	}
	assert.That(it.blk != nil && it.blk.valid, "use of invalidated vector iterator")
	if deref {
		assert.That(it.pos >= 0 && it.pos < it.blk.owner.size, "dereference of vector iterator at %d, size %d", it.pos, it.blk.owner.size)
	}
}

// Category reports api.RandomAccess.
func (it Iterator[T]) Category() api.Category { return api.RandomAccess }

// Index returns the position of the iterator.
func (it Iterator[T]) Index() int { return it.pos }

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T {
	it.check(true)
	return it.buf[it.pos]
}

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T {
	it.check(true)
	return &it.buf[it.pos]
}

// Set assigns v to the element at the iterator.
func (it Iterator[T]) Set(v T) {
	it.check(true)
	it.buf[it.pos] = v
}

// At returns the element n positions away.
func (it Iterator[T]) At(n int) T {
	return it.Add(n).Value()
}

// Next returns the iterator moved one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns the iterator moved one position backward.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns the iterator moved n positions forward.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator moved n positions backward.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Diff returns the signed distance it - other.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos - other.pos
}

// Eq reports whether both iterators refer to the same slot.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	return it.blk == other.blk && it.pos == other.pos
}

// Ne is the negation of Eq.
func (it Iterator[T]) Ne(other Iterator[T]) bool { return !it.Eq(other) }

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// LessEq reports whether it does not follow other.
func (it Iterator[T]) LessEq(other Iterator[T]) bool { return it.pos <= other.pos }

// Greater reports whether it follows other.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.pos > other.pos }

// GreaterEq reports whether it does not precede other.
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return it.pos >= other.pos }

var (
	_ api.RandomAccessIterator[int, Iterator[int]] = Iterator[int]{}
	_ api.OutputIterator[int, Iterator[int]]       = Iterator[int]{}
)
