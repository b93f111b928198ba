// File: ordmap/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ordmap

import (
	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/internal/assert"
)

// Iterator is a bidirectional cursor over a Map in key order. Each step
// re-seeks the neighbouring key in the tree, costing O(log n). A nil entry
// is the End position; stepping back from End yields the largest key.
type Iterator[K, V any] struct {
	c *core[K, V]
	p *Pair[K, V]
}

func (it Iterator[K, V]) check() {
	if assert.Enabled {
		assert.That(it.p != nil, "dereference of ordmap end iterator")
	}
}

// Category reports api.Bidirectional.
func (it Iterator[K, V]) Category() api.Category { return api.Bidirectional }

// Value returns a copy of the entry.
func (it Iterator[K, V]) Value() Pair[K, V] {
	it.check()
	return *it.p
}

// Key returns the entry key.
func (it Iterator[K, V]) Key() K {
	it.check()
	return it.p.Key
}

// Ptr returns the entry itself. Callers may modify Value but never Key.
func (it Iterator[K, V]) Ptr() *Pair[K, V] {
	it.check()
	return it.p
}

// Next returns the iterator at the next larger key, or End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.check()
	return it.c.iter(it.c.after(it.p.Key))
}

// Prev returns the iterator at the next smaller key. Prev of End is the
// largest key.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.p == nil {
		p, _ := it.c.tree.Max()
		return it.c.iter(p)
	}
	return it.c.iter(it.c.before(it.p.Key))
}

// Eq reports whether both iterators refer to the same entry of the same map.
func (it Iterator[K, V]) Eq(other Iterator[K, V]) bool {
	return it.c == other.c && it.p == other.p
}

// Ne is the negation of Eq.
func (it Iterator[K, V]) Ne(other Iterator[K, V]) bool { return !it.Eq(other) }

// ReverseIterator walks a Map in descending key order. Like the vector and
// list reverse iterators it wraps the forward position one past the entry
// it refers to, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[K, V any] struct {
	base Iterator[K, V]
}

// NewReverseIterator wraps a forward iterator.
func NewReverseIterator[K, V any](base Iterator[K, V]) ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: base}
}

// Base returns the wrapped forward iterator.
func (r ReverseIterator[K, V]) Base() Iterator[K, V] { return r.base }

// Category reports api.Bidirectional.
func (r ReverseIterator[K, V]) Category() api.Category { return api.Bidirectional }

func (r ReverseIterator[K, V]) Value() Pair[K, V] { return r.base.Prev().Value() }

func (r ReverseIterator[K, V]) Key() K { return r.base.Prev().Key() }

func (r ReverseIterator[K, V]) Ptr() *Pair[K, V] { return r.base.Prev().Ptr() }

// Next moves toward smaller keys.
func (r ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: r.base.Prev()}
}

// Prev moves toward larger keys.
func (r ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: r.base.Next()}
}

func (r ReverseIterator[K, V]) Eq(other ReverseIterator[K, V]) bool { return r.base.Eq(other.base) }

func (r ReverseIterator[K, V]) Ne(other ReverseIterator[K, V]) bool { return !r.Eq(other) }

var (
	_ api.BidirectionalIterator[Pair[int, int], Iterator[int, int]]        = Iterator[int, int]{}
	_ api.BidirectionalIterator[Pair[int, int], ReverseIterator[int, int]] = ReverseIterator[int, int]{}
)
