// File: api/iterator.go
// Author: momentics <momentics@gmail.com>
//
// Iterator categories and the generic cursor contracts built on them.
//
// Categories classify what a cursor type can do. They are fixed per type
// (every value of a cursor type reports the same Category) so algorithms
// can pick a strategy once instead of dispatching per call.

package api

// Category tags the traversal capability of an iterator type.
type Category int

const (
	Input Category = iota
	Output
	Forward
	Bidirectional
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Output:
		return "output"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random_access"
	default:
		return "unknown"
	}
}

// Satisfies reports whether an iterator of category c can be used where
// required is expected. Forward refines both Input and Output;
// Bidirectional refines Forward; RandomAccess refines Bidirectional.
func (c Category) Satisfies(required Category) bool {
	switch required {
	case Input, Output:
		return c == required || c >= Forward
	default:
		return c >= required
	}
}

// InputIterator is a single-pass read cursor. I is the concrete iterator
// type itself, so Next and Eq stay statically typed.
type InputIterator[T any, I any] interface {
	Category() Category
	Value() T
	Next() I
	Eq(other I) bool
}

// OutputIterator is a single-pass write cursor.
type OutputIterator[T any, I any] interface {
	Set(v T)
	Next() I
}

// BidirectionalIterator can also step backward.
type BidirectionalIterator[T any, I any] interface {
	InputIterator[T, I]
	Prev() I
}

// RandomAccessIterator supports O(1) offset arithmetic and ordering.
type RandomAccessIterator[T any, I any] interface {
	BidirectionalIterator[T, I]
	Add(n int) I
	Diff(other I) int
	Less(other I) bool
	At(n int) T
}
