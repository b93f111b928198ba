// File: ordmap/ordmap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ordmap implements an ordered associative container with unique
// keys on top of a B-tree. Entries are heap allocated and never move, so
// pointers returned by Index and Iterator.Ptr stay valid until the entry is
// erased.
package ordmap

import (
	"iter"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-stl/api"
)

// degree is the B-tree node fan-out.
const degree = 32

// Pair is one key/value entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// core is the tree and its ordering. Iterators point at the core rather
// than the Map, so they follow their entries through Swap.
type core[K, V any] struct {
	less func(a, b K) bool
	tree *btree.BTreeG[*Pair[K, V]]
}

// Map keeps its entries ordered by a strict weak ordering on K.
type Map[K, V any] struct {
	*core[K, V]
}

// New creates a map ordered by the natural ordering of K.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc creates a map ordered by less.
func NewFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{&core[K, V]{
		less: less,
		tree: btree.NewG(degree, func(a, b *Pair[K, V]) bool { return less(a.Key, b.Key) }),
	}}
}

func probe[K, V any](k K) *Pair[K, V] { return &Pair[K, V]{Key: k} }

func (c *core[K, V]) iter(p *Pair[K, V]) Iterator[K, V] { return Iterator[K, V]{c: c, p: p} }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// Size is Len.
func (m *Map[K, V]) Size() int { return m.tree.Len() }

// Empty reports whether Len() == 0.
func (m *Map[K, V]) Empty() bool { return m.tree.Len() == 0 }

// Insert adds k with value v unless k is present. It returns an iterator to
// the entry for k and whether the insertion happened.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	if p, ok := m.tree.Get(probe[K, V](k)); ok {
		return m.iter(p), false
	}
	p := &Pair[K, V]{Key: k, Value: v}
	m.tree.ReplaceOrInsert(p)
	return m.iter(p), true
}

// Set stores v under k, overwriting an existing value in place.
func (m *Map[K, V]) Set(k K, v V) {
	*m.Index(k) = v
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if p, ok := m.tree.Get(probe[K, V](k)); ok {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// At returns the value for k, or an error wrapping api.ErrNotFound.
func (m *Map[K, V]) At(k K) (V, error) {
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	var zero V
	return zero, errors.Wrapf(api.ErrNotFound, "key %v", k)
}

// Index returns a pointer to the value for k, inserting the zero value when
// k is absent.
func (m *Map[K, V]) Index(k K) *V {
	it, _ := m.Insert(k, *new(V))
	return &it.p.Value
}

// Erase removes k and returns the number of entries removed.
func (m *Map[K, V]) Erase(k K) int {
	if _, ok := m.tree.Delete(probe[K, V](k)); ok {
		return 1
	}
	return 0
}

// EraseAt removes the entry at it and returns an iterator to its successor.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	next := it.Next()
	m.tree.Delete(it.p)
	return next
}

// Find returns an iterator to k, or End().
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	p, _ := m.tree.Get(probe[K, V](k))
	return m.iter(p)
}

// Count returns 1 when k is present, 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	if m.tree.Has(probe[K, V](k)) {
		return 1
	}
	return 0
}

// LowerBound returns an iterator to the first key not less than k.
func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] {
	var found *Pair[K, V]
	m.tree.AscendGreaterOrEqual(probe[K, V](k), func(p *Pair[K, V]) bool {
		found = p
		return false
	})
	return m.iter(found)
}

// UpperBound returns an iterator to the first key greater than k.
func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] {
	return m.iter(m.after(k))
}

// after returns the first entry with a key greater than k, or nil.
func (c *core[K, V]) after(k K) *Pair[K, V] {
	var found *Pair[K, V]
	c.tree.AscendGreaterOrEqual(probe[K, V](k), func(p *Pair[K, V]) bool {
		if c.less(k, p.Key) {
			found = p
			return false
		}
		return true
	})
	return found
}

// before returns the last entry with a key less than k, or nil.
func (c *core[K, V]) before(k K) *Pair[K, V] {
	var found *Pair[K, V]
	c.tree.DescendLessOrEqual(probe[K, V](k), func(p *Pair[K, V]) bool {
		if c.less(p.Key, k) {
			found = p
			return false
		}
		return true
	})
	return found
}

// Begin returns an iterator to the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	p, _ := m.tree.Min()
	return m.iter(p)
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] { return m.iter(nil) }

// RBegin returns a reverse iterator to the largest key.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] { return NewReverseIterator(m.End()) }

// REnd returns the reverse past-the-end iterator.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] { return NewReverseIterator(m.Begin()) }

// Backward yields entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Descend(func(p *Pair[K, V]) bool {
			return yield(p.Key, p.Value)
		})
	}
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree.Clear(false)
}

// Clone returns a deep copy holding fresh entries.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := NewFunc[K, V](m.less)
	m.tree.Ascend(func(p *Pair[K, V]) bool {
		cp := *p
		c.tree.ReplaceOrInsert(&cp)
		return true
	})
	return c
}

// Swap exchanges contents and ordering with other in O(1). Iterators keep
// referring to their entries but must be compared against the other map's
// End afterwards.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.core, other.core = other.core, m.core
}

// All yields entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(p *Pair[K, V]) bool {
			return yield(p.Key, p.Value)
		})
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.tree.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}
