// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared block/slot accounting for allocator implementations.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-stl/api"
)

// counters tracks allocator activity. Allocators may be shared by containers
// living on different goroutines, so every field is atomic.
type counters struct {
	allocations    atomic.Int64
	deallocations  atomic.Int64
	slotsAllocated atomic.Int64
	slotsInUse     atomic.Int64
	constructs     atomic.Int64
	destroys       atomic.Int64
}

func (c *counters) recordAlloc(n int) {
	c.allocations.Add(1)
	c.slotsAllocated.Add(int64(n))
	c.slotsInUse.Add(int64(n))
}

func (c *counters) recordFree(n int) {
	c.deallocations.Add(1)
	c.slotsInUse.Add(-int64(n))
}

func (c *counters) snapshot() api.AllocatorStats {
	return api.AllocatorStats{
		Allocations:    c.allocations.Load(),
		Deallocations:  c.deallocations.Load(),
		SlotsAllocated: c.slotsAllocated.Load(),
		SlotsInUse:     c.slotsInUse.Load(),
		Constructs:     c.constructs.Load(),
		Destroys:       c.destroys.Load(),
	}
}
