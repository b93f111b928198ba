// File: list/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package list

import (
	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/internal/assert"
)

// Iterator is a bidirectional cursor referring to one list node. Moving
// past End wraps to Begin through the sentinel.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) check() {
	if assert.Enabled {
		assert.That(it.n != nil && it.n.next != nil, "use of invalidated list iterator")
	}
}

// Category reports api.Bidirectional.
func (it Iterator[T]) Category() api.Category { return api.Bidirectional }

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T {
	it.check()
	return it.n.val
}

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T {
	it.check()
	return &it.n.val
}

// Set assigns v to the element at the iterator.
func (it Iterator[T]) Set(v T) {
	it.check()
	it.n.val = v
}

// Next returns the iterator moved to the successor node.
func (it Iterator[T]) Next() Iterator[T] {
	it.check()
	return Iterator[T]{n: it.n.next}
}

// Prev returns the iterator moved to the predecessor node.
func (it Iterator[T]) Prev() Iterator[T] {
	it.check()
	return Iterator[T]{n: it.n.prev}
}

// Eq reports whether both iterators refer to the same node.
func (it Iterator[T]) Eq(other Iterator[T]) bool { return it.n == other.n }

// Ne is the negation of Eq.
func (it Iterator[T]) Ne(other Iterator[T]) bool { return it.n != other.n }

// ReverseIterator walks a list back to front. It wraps the forward position
// one past the element it refers to.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// NewReverseIterator wraps a forward iterator.
func NewReverseIterator[T any](base Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: base}
}

// Base returns the wrapped forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Category reports api.Bidirectional.
func (r ReverseIterator[T]) Category() api.Category { return api.Bidirectional }

func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

func (r ReverseIterator[T]) Ptr() *T { return r.base.Prev().Ptr() }

func (r ReverseIterator[T]) Set(v T) { r.base.Prev().Set(v) }

func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

func (r ReverseIterator[T]) Eq(other ReverseIterator[T]) bool { return r.base.Eq(other.base) }

func (r ReverseIterator[T]) Ne(other ReverseIterator[T]) bool { return !r.Eq(other) }

var (
	_ api.BidirectionalIterator[int, Iterator[int]]        = Iterator[int]{}
	_ api.OutputIterator[int, Iterator[int]]               = Iterator[int]{}
	_ api.BidirectionalIterator[int, ReverseIterator[int]] = ReverseIterator[int]{}
)
