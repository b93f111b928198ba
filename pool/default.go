// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator selection by name, used by configuration-driven construction.

package pool

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
)

// Allocator kinds accepted by New.
const (
	KindHeap   = "heap"
	KindPooled = "pooled"
)

// Default returns the general-purpose allocator used when a container is
// built without an explicit strategy.
func Default[T any]() api.Allocator[T] {
	return NewHeapAllocator[T]()
}

// New returns a fresh allocator of the named kind. An empty kind selects
// the default heap allocator.
func New[T any](kind string) (api.Allocator[T], error) {
	switch kind {
	case "", KindHeap:
		return NewHeapAllocator[T](), nil
	case KindPooled:
		return NewPooledAllocator[T](), nil
	default:
		return nil, errors.Wrapf(api.ErrInvalidArgument, "unknown allocator kind %q", kind)
	}
}
