// File: vector/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import "github.com/momentics/hioload-stl/api"

// Option customizes vector construction.
type Option[T any] func(*Vector[T])

// WithAllocator selects the element storage strategy.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// WithCapacity reserves n slots up front.
func WithCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) {
		v.initCap = n
	}
}
