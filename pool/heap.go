// File: pool/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// General-purpose allocator backed by the Go heap.

package pool

import (
	"math"
	"unsafe"

	"github.com/momentics/hioload-stl/api"
)

// HeapAllocator hands out fresh blocks from the Go heap. Deallocate only
// updates accounting; the GC reclaims the memory once nothing references it.
type HeapAllocator[T any] struct {
	stats counters
}

// NewHeapAllocator creates a heap-backed allocator.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

func (a *HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest(n, a.MaxSize()); err != nil {
		return nil, err
	}
	a.stats.recordAlloc(n)
	return make([]T, n), nil
}

func (a *HeapAllocator[T]) Deallocate(block []T) {
	a.stats.recordFree(len(block))
}

func (a *HeapAllocator[T]) Construct(block []T, i int, v T) {
	block[i] = v
	a.stats.constructs.Add(1)
}

func (a *HeapAllocator[T]) Destroy(block []T, i int) {
	var zero T
	block[i] = zero
	a.stats.destroys.Add(1)
}

func (a *HeapAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}

// Stats returns a snapshot of the accounting counters.
func (a *HeapAllocator[T]) Stats() api.AllocatorStats {
	return a.stats.snapshot()
}

// maxSlots is the theoretical slot limit for T: the largest block whose byte
// size still fits in an int.
func maxSlots[T any]() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}
	return math.MaxInt / sz
}

// checkRequest validates a block request against a slot limit.
func checkRequest(n, limit int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "negative block size").
			WithContext("requested", n)
	}
	if n > limit {
		return api.NewError(api.ErrCodeLengthExceeded, "block size exceeds max size").
			WithContext("requested", n).
			WithContext("max", limit)
	}
	return nil
}

var (
	_ api.Allocator[int] = (*HeapAllocator[int])(nil)
	_ api.StatsProvider  = (*HeapAllocator[int])(nil)
)
