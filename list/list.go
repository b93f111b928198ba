// File: list/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package list implements a doubly linked list with a sentinel node.
// Iterators stay valid across every operation except the erasure of the
// element they refer to. Splicing moves nodes, so iterators follow their
// elements into the destination list.
package list

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/internal/assert"
)

type node[T any] struct {
	prev, next *node[T]
	val        T
}

// List is a doubly linked sequence of T. The zero value is an empty list.
type List[T any] struct {
	root *node[T] // sentinel: root.next is the front, root.prev the back
	size int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// NewFilled creates a list holding n copies of val.
func NewFilled[T any](n int, val T) *List[T] {
	l := New[T]()
	l.Assign(n, val)
	return l
}

// NewFromSlice creates a list holding a copy of s.
func NewFromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, v := range s {
		l.PushBack(v)
	}
	return l
}

// NewFromRange creates a list holding the values of [first, last).
func NewFromRange[T any, I api.InputIterator[T, I]](first, last I) *List[T] {
	l := New[T]()
	for it := first; !it.Eq(last); it = it.Next() {
		l.PushBack(it.Value())
	}
	return l
}

func (l *List[T]) init() *List[T] {
	if l.root == nil {
		l.root = &node[T]{}
		l.root.next = l.root
		l.root.prev = l.root
	}
	return l
}

// Size returns the number of elements.
func (l *List[T]) Size() int { return l.size }

// Empty reports whether Size() == 0.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element, or api.ErrEmpty.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "front")
	}
	return l.root.next.val, nil
}

// Back returns the last element, or api.ErrEmpty.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "back")
	}
	return l.root.prev.val, nil
}

// link places n before at.
func (l *List[T]) link(at, n *node[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.size++
}

// unlink detaches n and marks it erased.
func (l *List[T]) unlink(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	var zero T
	n.val = zero
	l.size--
	return next
}

// checkPos validates a position in debug builds.
func (l *List[T]) checkPos(pos Iterator[T], allowEnd bool) {
	if !assert.Enabled {
		return
	}
	assert.That(pos.n != nil && pos.n.next != nil, "use of invalidated list iterator")
	if !allowEnd {
		assert.That(pos.n != l.root, "list iterator at end")
	}
}

// PushFront prepends val.
func (l *List[T]) PushFront(val T) {
	l.init()
	l.link(l.root.next, &node[T]{val: val})
}

// PushBack appends val.
func (l *List[T]) PushBack(val T) {
	l.init()
	l.link(l.root, &node[T]{val: val})
}

// PopFront removes the first element. It is a no-op on an empty list.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}
	l.unlink(l.root.next)
}

// PopBack removes the last element. It is a no-op on an empty list.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		return
	}
	l.unlink(l.root.prev)
}

// Insert places val before pos and returns an iterator to it.
func (l *List[T]) Insert(pos Iterator[T], val T) Iterator[T] {
	l.init()
	l.checkPos(pos, true)
	n := &node[T]{val: val}
	l.link(pos.n, n)
	return Iterator[T]{n: n}
}

// InsertN places n copies of val before pos and returns an iterator to the
// first of them, or pos when n <= 0.
func (l *List[T]) InsertN(pos Iterator[T], n int, val T) Iterator[T] {
	l.init()
	l.checkPos(pos, true)
	first := pos
	for i := 0; i < n; i++ {
		it := l.Insert(pos, val)
		if i == 0 {
			first = it
		}
	}
	return first
}

// InsertSlice places a copy of s before pos and returns an iterator to the
// first inserted element, or pos when s is empty.
func (l *List[T]) InsertSlice(pos Iterator[T], s []T) Iterator[T] {
	l.init()
	first := pos
	for i, v := range s {
		it := l.Insert(pos, v)
		if i == 0 {
			first = it
		}
	}
	return first
}

// Erase removes the element at pos and returns an iterator to its successor.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	l.checkPos(pos, false)
	return Iterator[T]{n: l.unlink(pos.n)}
}

// EraseRange removes [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first.n != last.n {
		first = l.Erase(first)
	}
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.init()
	for n := l.root.next; n != l.root; {
		n = l.unlink(n)
	}
}

// Assign replaces the contents with n copies of val.
func (l *List[T]) Assign(n int, val T) {
	l.Clear()
	for i := 0; i < n; i++ {
		l.PushBack(val)
	}
}

// AssignSlice replaces the contents with a copy of s.
func (l *List[T]) AssignSlice(s []T) {
	l.Clear()
	for _, v := range s {
		l.PushBack(v)
	}
}

// Resize removes elements from the back when n < Size(), or appends copies
// of val when n > Size(). A negative n empties the list.
func (l *List[T]) Resize(n int, val T) {
	n = max(n, 0)
	for l.size > n {
		l.PopBack()
	}
	for l.size < n {
		l.PushBack(val)
	}
}

// Swap exchanges contents with other in O(1). Iterators, including End,
// follow their nodes.
func (l *List[T]) Swap(other *List[T]) {
	l.init()
	other.init()
	l.root, other.root = other.root, l.root
	l.size, other.size = other.size, l.size
}

// Clone returns a deep copy.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for _, v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// Begin returns an iterator to the first element.
func (l *List[T]) Begin() Iterator[T] {
	l.init()
	return Iterator[T]{n: l.root.next}
}

// End returns the past-the-end iterator.
func (l *List[T]) End() Iterator[T] {
	l.init()
	return Iterator[T]{n: l.root}
}

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] { return NewReverseIterator(l.End()) }

// REnd returns the reverse past-the-end iterator.
func (l *List[T]) REnd() ReverseIterator[T] { return NewReverseIterator(l.Begin()) }

// All yields index/value pairs front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.root == nil {
			return
		}
		i := 0
		for n := l.root.next; n != l.root; n = n.next {
			if !yield(i, n.val) {
				return
			}
			i++
		}
	}
}

// Backward yields index/value pairs back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.root == nil {
			return
		}
		i := l.size - 1
		for n := l.root.prev; n != l.root; n = n.prev {
			if !yield(i, n.val) {
				return
			}
			i--
		}
	}
}

// Slice returns a copy of the elements in order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

var (
	_ api.BackSequence[int]      = (*List[int])(nil)
	_ api.FrontBackSequence[int] = (*List[int])(nil)
)
