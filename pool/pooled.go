// File: pool/pooled.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-class block recycling. Requests are rounded up to a power-of-two
// class; released blocks are cleared and parked for the next request of the
// same class. Blocks above the largest class bypass the pools.

package pool

import (
	"math/bits"
	"sync/atomic"

	"github.com/momentics/hioload-stl/api"
)

const (
	minClassShift = 3  // 8 slots
	maxClassShift = 20 // 1Mi slots
)

// PooledAllocator recycles blocks by size class.
type PooledAllocator[T any] struct {
	classes  [maxClassShift - minClassShift + 1]*SyncPool[*[]T]
	stats    counters
	recycled atomic.Int64
}

// NewPooledAllocator creates a size-class allocator.
func NewPooledAllocator[T any]() *PooledAllocator[T] {
	a := &PooledAllocator[T]{}
	for i := range a.classes {
		size := 1 << (i + minClassShift)
		a.classes[i] = NewSyncPool(func() *[]T {
			b := make([]T, size)
			return &b
		})
	}
	return a
}

// classIndex returns the pool index for a request of n slots, or -1 when
// the request is served directly from the heap.
func classIndex(n int) int {
	if n <= 0 {
		return -1
	}
	shift := bits.Len(uint(n - 1))
	if shift < minClassShift {
		shift = minClassShift
	}
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

func (a *PooledAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest(n, a.MaxSize()); err != nil {
		return nil, err
	}
	a.stats.recordAlloc(n)
	idx := classIndex(n)
	if idx < 0 {
		return make([]T, n), nil
	}
	bp := a.classes[idx].Get()
	return (*bp)[:n], nil
}

// Deallocate clears the block and returns it to its class. Blocks whose
// capacity is not an exact class size were not produced by a pool and are
// left to the GC.
func (a *PooledAllocator[T]) Deallocate(block []T) {
	a.stats.recordFree(len(block))
	c := cap(block)
	idx := classIndex(c)
	if idx < 0 || c != 1<<(idx+minClassShift) {
		return
	}
	full := block[:c]
	clear(full)
	a.recycled.Add(1)
	a.classes[idx].Put(&full)
}

func (a *PooledAllocator[T]) Construct(block []T, i int, v T) {
	block[i] = v
	a.stats.constructs.Add(1)
}

func (a *PooledAllocator[T]) Destroy(block []T, i int) {
	var zero T
	block[i] = zero
	a.stats.destroys.Add(1)
}

func (a *PooledAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}

// Stats returns a snapshot of the accounting counters.
func (a *PooledAllocator[T]) Stats() api.AllocatorStats {
	return a.stats.snapshot()
}

// Recycled returns how many blocks were parked for reuse.
func (a *PooledAllocator[T]) Recycled() int64 {
	return a.recycled.Load()
}

// Misses returns how many class-sized blocks had to be freshly made.
func (a *PooledAllocator[T]) Misses() int64 {
	var n int64
	for _, c := range a.classes {
		n += c.Misses()
	}
	return n
}

var (
	_ api.Allocator[int] = (*PooledAllocator[int])(nil)
	_ api.StatsProvider  = (*PooledAllocator[int])(nil)
)
