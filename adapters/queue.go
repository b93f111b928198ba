// File: adapters/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/list"
)

// Queue is a FIFO view over a FrontBackSequence: Push appends at the back,
// Pop removes from the front.
type Queue[T any] struct {
	c api.FrontBackSequence[T]
}

// NewQueue creates a queue backed by a linked list.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{c: list.New[T]()}
}

// NewQueueOn creates a queue over an existing container. A vector is
// accepted, at O(n) per Pop.
func NewQueueOn[T any](c api.FrontBackSequence[T]) *Queue[T] {
	return &Queue[T]{c: c}
}

func (q *Queue[T]) Empty() bool { return q.c.Empty() }

func (q *Queue[T]) Size() int { return q.c.Size() }

// Front returns the oldest element, or api.ErrEmpty.
func (q *Queue[T]) Front() (T, error) {
	v, err := q.c.Front()
	return v, errors.WithMessage(err, "queue front")
}

// Back returns the newest element, or api.ErrEmpty.
func (q *Queue[T]) Back() (T, error) {
	v, err := q.c.Back()
	return v, errors.WithMessage(err, "queue back")
}

func (q *Queue[T]) Push(v T) { q.c.PushBack(v) }

// Pop removes the oldest element. It is a no-op on an empty queue.
func (q *Queue[T]) Pop() { q.c.PopFront() }

// Container returns the backing sequence.
func (q *Queue[T]) Container() api.FrontBackSequence[T] { return q.c }
