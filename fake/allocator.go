// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides test doubles for hioload-stl contracts.
package fake

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-stl/api"
)

// RecordingAllocator is a heap allocator that tracks every block and slot it
// hands out. It flags double construction, destruction of raw slots, and
// double or foreign deallocation as Violations, and can be told to fail
// after a number of successful allocations.
type RecordingAllocator[T any] struct {
	Allocations   int
	Deallocations int
	Constructs    int
	Destroys      int
	Sizes         []int
	Violations    []string

	failAfter int
	blocks    map[*T]int
	live      map[*T]bool
}

// NewRecordingAllocator creates an allocator that never fails.
func NewRecordingAllocator[T any]() *RecordingAllocator[T] {
	return &RecordingAllocator[T]{
		failAfter: -1,
		blocks:    make(map[*T]int),
		live:      make(map[*T]bool),
	}
}

// FailAfter makes every allocation after the next n successful ones fail.
// A negative n disables failure injection.
func (r *RecordingAllocator[T]) FailAfter(n int) {
	r.failAfter = n
}

func (r *RecordingAllocator[T]) Allocate(n int) ([]T, error) {
	if r.failAfter == 0 {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "injected allocation failure").
			WithContext("requested", n)
	}
	if r.failAfter > 0 {
		r.failAfter--
	}
	block := make([]T, n)
	r.Allocations++
	r.Sizes = append(r.Sizes, n)
	if n > 0 {
		r.blocks[unsafe.SliceData(block)] = n
	}
	return block, nil
}

func (r *RecordingAllocator[T]) Deallocate(block []T) {
	r.Deallocations++
	if cap(block) == 0 {
		return
	}
	key := unsafe.SliceData(block)
	if _, ok := r.blocks[key]; !ok {
		r.Violations = append(r.Violations, "deallocate of unknown or released block")
		return
	}
	delete(r.blocks, key)
	for i := range block {
		if r.live[&block[i]] {
			r.Violations = append(r.Violations, fmt.Sprintf("deallocate with live slot %d", i))
			delete(r.live, &block[i])
		}
	}
}

func (r *RecordingAllocator[T]) Construct(block []T, i int, v T) {
	p := &block[i]
	if r.live[p] {
		r.Violations = append(r.Violations, fmt.Sprintf("construct over live slot %d", i))
	}
	r.live[p] = true
	*p = v
	r.Constructs++
}

func (r *RecordingAllocator[T]) Destroy(block []T, i int) {
	p := &block[i]
	if !r.live[p] {
		r.Violations = append(r.Violations, fmt.Sprintf("destroy of raw slot %d", i))
	}
	delete(r.live, p)
	var zero T
	*p = zero
	r.Destroys++
}

func (r *RecordingAllocator[T]) MaxSize() int {
	return 1 << 30
}

// LiveSlots returns the number of constructed slots not yet destroyed.
func (r *RecordingAllocator[T]) LiveSlots() int {
	return len(r.live)
}

// OutstandingBlocks returns the number of non-empty blocks not yet released.
func (r *RecordingAllocator[T]) OutstandingBlocks() int {
	return len(r.blocks)
}

// Stats reports the recorded counters.
func (r *RecordingAllocator[T]) Stats() api.AllocatorStats {
	var inUse int64
	for _, n := range r.blocks {
		inUse += int64(n)
	}
	var slots int64
	for _, n := range r.Sizes {
		slots += int64(n)
	}
	return api.AllocatorStats{
		Allocations:    int64(r.Allocations),
		Deallocations:  int64(r.Deallocations),
		SlotsAllocated: slots,
		SlotsInUse:     inUse,
		Constructs:     int64(r.Constructs),
		Destroys:       int64(r.Destroys),
	}
}

var (
	_ api.Allocator[int] = (*RecordingAllocator[int])(nil)
	_ api.StatsProvider  = (*RecordingAllocator[int])(nil)
)
