// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
//
// Minimal sequence contracts consumed by the stack and queue adapters.

package api

import "iter"

// BackSequence is what a LIFO adapter needs from its underlying container.
// All walks the elements front to back and is used for adapter comparison.
type BackSequence[T any] interface {
	Empty() bool
	Size() int
	Back() (T, error)
	PushBack(v T)
	PopBack()
	All() iter.Seq2[int, T]
}

// FrontBackSequence is what a FIFO adapter needs from its underlying container.
type FrontBackSequence[T any] interface {
	Empty() bool
	Size() int
	Front() (T, error)
	Back() (T, error)
	PushBack(v T)
	PopFront()
	All() iter.Seq2[int, T]
}
