// File: list/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Node-relinking operations: splice, merge, sort, unique, reverse. None of
// them copies an element or invalidates an iterator to a surviving node.

package list

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// transfer moves the nodes of [first, last) before pos.
func transfer[T any](pos, first, last *node[T]) {
	if first == last || pos == first || pos == last {
		return
	}
	tail := last.prev
	first.prev.next = last
	last.prev = first.prev

	first.prev = pos.prev
	tail.next = pos
	pos.prev.next = first
	pos.prev = tail
}

// Splice moves every element of other before pos. other is left empty.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	l.init()
	l.checkPos(pos, true)
	if other == l || other.Empty() {
		return
	}
	n := other.size
	transfer(pos.n, other.root.next, other.root)
	other.size = 0
	l.size += n
}

// SpliceOne moves the element at it from other before pos.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	l.init()
	l.checkPos(pos, true)
	other.checkPos(it, false)
	if pos.n == it.n || pos.n == it.n.next {
		return
	}
	transfer(pos.n, it.n, it.n.next)
	other.size--
	l.size++
}

// SpliceRange moves [first, last) from other before pos. pos must not lie
// inside the range when other is l.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	l.init()
	l.checkPos(pos, true)
	if first.n == last.n {
		return
	}
	if other != l {
		n := 0
		for p := first.n; p != last.n; p = p.next {
			n++
		}
		other.size -= n
		l.size += n
	}
	transfer(pos.n, first.n, last.n)
}

// RemoveIf erases every element satisfying pred and returns how many were
// erased.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	l.init()
	removed := 0
	for n := l.root.next; n != l.root; {
		if pred(n.val) {
			n = l.unlink(n)
			removed++
			continue
		}
		n = n.next
	}
	return removed
}

// Remove erases every element equal to v.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(x T) bool { return x == v })
}

// UniqueFunc erases every element equal, per eq, to the element before it,
// keeping the first of each run. It returns how many were erased.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	l.init()
	if l.size < 2 {
		return 0
	}
	removed := 0
	for prev := l.root.next; prev.next != l.root; {
		if eq(prev.val, prev.next.val) {
			l.unlink(prev.next)
			removed++
			continue
		}
		prev = prev.next
	}
	return removed
}

// Unique erases consecutive duplicates.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// MergeFunc moves every element of other into l. Both lists must be sorted
// by less; the result is sorted and stable, with l's elements ahead of
// equal elements from other. other is left empty.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	l.init()
	other.init()
	if other == l {
		return
	}
	a, b := l.root.next, other.root.next
	for b != other.root {
		if a == l.root {
			transfer(l.root, b, other.root)
			break
		}
		if less(b.val, a.val) {
			next := b.next
			transfer(a, b, next)
			b = next
			continue
		}
		a = a.next
	}
	l.size += other.size
	other.size = 0
}

// Merge is MergeFunc with the natural ordering.
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, func(a, b T) bool { return a < b })
}

// SortFunc sorts the list stably by less. Nodes are relinked, so iterators
// keep referring to the same elements.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.init()
	if l.size < 2 {
		return
	}
	nodes := make([]*node[T], 0, l.size)
	for n := l.root.next; n != l.root; n = n.next {
		nodes = append(nodes, n)
	}
	slices.SortStableFunc(nodes, func(x, y *node[T]) int {
		switch {
		case less(x.val, y.val):
			return -1
		case less(y.val, x.val):
			return 1
		}
		return 0
	})
	prev := l.root
	for _, n := range nodes {
		prev.next = n
		n.prev = prev
		prev = n
	}
	prev.next = l.root
	l.root.prev = prev
}

// Sort is SortFunc with the natural ordering.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool { return a < b })
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	l.init()
	n := l.root
	for {
		n.prev, n.next = n.next, n.prev
		n = n.prev
		if n == l.root {
			return
		}
	}
}
