// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Defines the element storage allocator contract: raw block acquisition and
// release, decoupled from per-slot construction and destruction.

package api

// Allocator acquires and releases raw blocks of T slots and constructs or
// destroys individual slots in place.
//
// A block returned by Allocate has len == n. Its slots are raw until
// Construct places a value in them; Destroy returns a slot to the raw state.
// Containers own the blocks they allocate and must hand every block back to
// Deallocate exactly once.
type Allocator[T any] interface {
	// Allocate returns a raw block of exactly n slots.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate.
	// The block must not be used afterwards.
	Deallocate(block []T)

	// Construct places v into slot i of block.
	Construct(block []T, i int, v T)

	// Destroy ends the lifetime of the value in slot i of block.
	Destroy(block []T, i int)

	// MaxSize returns the largest block, in slots, Allocate can satisfy.
	MaxSize() int
}

// AllocatorStats aggregates block and slot accounting for an allocator.
type AllocatorStats struct {
	Allocations    int64
	Deallocations  int64
	SlotsAllocated int64
	SlotsInUse     int64
	Constructs     int64
	Destroys       int64
}

// StatsProvider is implemented by allocators that keep accounting.
type StatsProvider interface {
	Stats() AllocatorStats
}
