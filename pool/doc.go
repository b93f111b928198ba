// Package pool
// Author: momentics <momentics@gmail.com>
//
// Element storage allocators for hioload-stl containers.
// Implements heap-backed, size-class recycling, budget-limited and
// Prometheus-instrumented strategies behind api.Allocator.
// See heap.go, pooled.go, limit.go, instrumented.go for implementation details.
package pool
