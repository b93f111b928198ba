// File: pool/limit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Budget-enforcing allocator wrapper.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-stl/api"
)

// LimitAllocator caps the number of live slots and the size of a single
// block handed out by the wrapped allocator. A limit of 0 disables the cap.
type LimitAllocator[T any] struct {
	inner    api.Allocator[T]
	maxSlots int64
	maxBlock int
	inUse    atomic.Int64
}

// NewLimitAllocator wraps inner with a live-slot budget and a per-block cap.
func NewLimitAllocator[T any](inner api.Allocator[T], maxSlots int64, maxBlock int) *LimitAllocator[T] {
	return &LimitAllocator[T]{
		inner:    inner,
		maxSlots: maxSlots,
		maxBlock: maxBlock,
	}
}

func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkRequest(n, a.MaxSize()); err != nil {
		return nil, err
	}
	if a.maxSlots > 0 {
		if used := a.inUse.Add(int64(n)); used > a.maxSlots {
			a.inUse.Add(-int64(n))
			return nil, api.NewError(api.ErrCodeResourceExhausted, "slot budget exhausted").
				WithContext("requested", n).
				WithContext("in_use", used-int64(n)).
				WithContext("budget", a.maxSlots)
		}
	} else {
		a.inUse.Add(int64(n))
	}
	block, err := a.inner.Allocate(n)
	if err != nil {
		a.inUse.Add(-int64(n))
		return nil, err
	}
	return block, nil
}

func (a *LimitAllocator[T]) Deallocate(block []T) {
	a.inUse.Add(-int64(len(block)))
	a.inner.Deallocate(block)
}

func (a *LimitAllocator[T]) Construct(block []T, i int, v T) { a.inner.Construct(block, i, v) }

func (a *LimitAllocator[T]) Destroy(block []T, i int) { a.inner.Destroy(block, i) }

// MaxSize is the smaller of the block cap and the wrapped allocator's limit.
func (a *LimitAllocator[T]) MaxSize() int {
	limit := a.inner.MaxSize()
	if a.maxBlock > 0 && a.maxBlock < limit {
		return a.maxBlock
	}
	return limit
}

// InUse returns the number of slots currently handed out.
func (a *LimitAllocator[T]) InUse() int64 {
	return a.inUse.Load()
}

// Stats forwards to the wrapped allocator when it keeps accounting.
func (a *LimitAllocator[T]) Stats() api.AllocatorStats {
	if sp, ok := a.inner.(api.StatsProvider); ok {
		return sp.Stats()
	}
	return api.AllocatorStats{SlotsInUse: a.inUse.Load()}
}

var (
	_ api.Allocator[int] = (*LimitAllocator[int])(nil)
	_ api.StatsProvider  = (*LimitAllocator[int])(nil)
)
