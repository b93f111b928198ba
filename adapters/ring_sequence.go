// File: adapters/ring_sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FrontBackSequence over a growable ring buffer, giving Queue an O(1)
// front removal with contiguous storage.

package adapters

import (
	"iter"

	"github.com/eapache/queue"
	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
)

// RingSequence stores elements in a power-of-two ring that doubles when
// full and halves when a quarter full.
type RingSequence[T any] struct {
	q *queue.Queue
}

// NewRingSequence creates an empty ring.
func NewRingSequence[T any]() *RingSequence[T] {
	return &RingSequence[T]{q: queue.New()}
}

func (r *RingSequence[T]) Empty() bool { return r.q.Length() == 0 }

func (r *RingSequence[T]) Size() int { return r.q.Length() }

// Front returns the oldest element, or api.ErrEmpty.
func (r *RingSequence[T]) Front() (T, error) {
	if r.q.Length() == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "front")
	}
	return r.q.Peek().(T), nil
}

// Back returns the newest element, or api.ErrEmpty.
func (r *RingSequence[T]) Back() (T, error) {
	n := r.q.Length()
	if n == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "back")
	}
	return r.q.Get(n - 1).(T), nil
}

// At returns element i counted from the front.
func (r *RingSequence[T]) At(i int) (T, error) {
	if i < 0 || i >= r.q.Length() {
		var zero T
		return zero, api.OutOfRange(i, r.q.Length())
	}
	return r.q.Get(i).(T), nil
}

func (r *RingSequence[T]) PushBack(v T) { r.q.Add(v) }

// PopFront removes the oldest element. It is a no-op when empty.
func (r *RingSequence[T]) PopFront() {
	if r.q.Length() == 0 {
		return
	}
	r.q.Remove()
}

// All yields index/value pairs from front to back.
func (r *RingSequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.q.Length(); i++ {
			if !yield(i, r.q.Get(i).(T)) {
				return
			}
		}
	}
}

var _ api.FrontBackSequence[int] = (*RingSequence[int])(nil)
