// File: adapters/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Relational functions for Stack and Queue. Both compare their underlying
// containers front to back, so a stack's bottom element is compared first.

package adapters

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

func values[T any](seq iter.Seq2[int, T], n int) []T {
	out := make([]T, 0, n)
	for _, v := range seq {
		out = append(out, v)
	}
	return out
}

func compareOrdered[T constraints.Ordered](a, b []T) int {
	return slices.CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
		return 0
	})
}

// StackEqual reports whether a and b hold equal elements in the same order.
func StackEqual[T comparable](a, b *Stack[T]) bool {
	return a.Size() == b.Size() &&
		slices.Equal(values(a.c.All(), a.Size()), values(b.c.All(), b.Size()))
}

// StackCompare orders a and b lexicographically, returning -1, 0 or +1.
func StackCompare[T constraints.Ordered](a, b *Stack[T]) int {
	return compareOrdered(values(a.c.All(), a.Size()), values(b.c.All(), b.Size()))
}

func StackLess[T constraints.Ordered](a, b *Stack[T]) bool { return StackCompare(a, b) < 0 }

func StackLessEq[T constraints.Ordered](a, b *Stack[T]) bool { return StackCompare(a, b) <= 0 }

// QueueEqual reports whether a and b hold equal elements in the same order.
func QueueEqual[T comparable](a, b *Queue[T]) bool {
	return a.Size() == b.Size() &&
		slices.Equal(values(a.c.All(), a.Size()), values(b.c.All(), b.Size()))
}

// QueueCompare orders a and b lexicographically from their fronts,
// returning -1, 0 or +1.
func QueueCompare[T constraints.Ordered](a, b *Queue[T]) int {
	return compareOrdered(values(a.c.All(), a.Size()), values(b.c.All(), b.Size()))
}

func QueueLess[T constraints.Ordered](a, b *Queue[T]) bool { return QueueCompare(a, b) < 0 }

func QueueLessEq[T constraints.Ordered](a, b *Queue[T]) bool { return QueueCompare(a, b) <= 0 }
