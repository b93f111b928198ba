// File: adapters/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/vector"
)

// Stack is a LIFO view over a BackSequence.
type Stack[T any] struct {
	c api.BackSequence[T]
}

// NewStack creates a stack backed by a vector.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{c: vector.New[T]()}
}

// NewStackOn creates a stack over an existing container, which keeps its
// contents; its back is the top of the stack.
func NewStackOn[T any](c api.BackSequence[T]) *Stack[T] {
	return &Stack[T]{c: c}
}

func (s *Stack[T]) Empty() bool { return s.c.Empty() }

func (s *Stack[T]) Size() int { return s.c.Size() }

// Top returns the most recently pushed element, or api.ErrEmpty.
func (s *Stack[T]) Top() (T, error) {
	v, err := s.c.Back()
	return v, errors.WithMessage(err, "stack top")
}

func (s *Stack[T]) Push(v T) { s.c.PushBack(v) }

// Pop removes the top element. It is a no-op on an empty stack.
func (s *Stack[T]) Pop() { s.c.PopBack() }

// Container returns the backing sequence.
func (s *Stack[T]) Container() api.BackSequence[T] { return s.c }
