// File: pool/instrumented.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator wrapper exporting Prometheus metrics and logging failures.

package pool

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-stl/api"
)

// LargeBlockSlots is the block size above which allocations are logged at debug level.
const LargeBlockSlots = 1 << 16

// InstrumentedAllocator records allocator activity as Prometheus metrics.
type InstrumentedAllocator[T any] struct {
	inner  api.Allocator[T]
	name   string
	logger log.Logger
	stats  counters

	allocations   prometheus.Counter
	deallocations prometheus.Counter
	failures      prometheus.Counter
	slots         prometheus.Counter
	constructs    prometheus.Counter
	destroys      prometheus.Counter
	liveSlots     prometheus.Gauge
}

// NewInstrumentedAllocator wraps inner and registers its metrics with reg
// under the given namespace. name is attached as the "allocator" label so
// several allocators can share one registry. Re-registering the same name
// reuses the existing collectors.
func NewInstrumentedAllocator[T any](inner api.Allocator[T], reg prometheus.Registerer, namespace, name string, logger log.Logger) *InstrumentedAllocator[T] {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	labels := prometheus.Labels{"allocator": name}
	counter := func(metric, help string) prometheus.Counter {
		return registerCollector(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "allocator",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}))
	}
	return &InstrumentedAllocator[T]{
		inner:         inner,
		name:          name,
		logger:        log.With(logger, "component", "allocator", "allocator", name),
		allocations:   counter("allocations_total", "Blocks allocated."),
		deallocations: counter("deallocations_total", "Blocks released."),
		failures:      counter("allocation_failures_total", "Block requests that failed."),
		slots:         counter("slots_allocated_total", "Slots allocated across all blocks."),
		constructs:    counter("constructs_total", "Slots constructed."),
		destroys:      counter("destroys_total", "Slots destroyed."),
		liveSlots: registerCollector(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "allocator",
			Name:        "live_slots",
			Help:        "Slots in blocks that have not been released.",
			ConstLabels: labels,
		})),
	}
}

// registerCollector registers c, returning the already registered collector
// when an identical one exists. A nil registerer leaves c unregistered.
func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (a *InstrumentedAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := a.inner.Allocate(n)
	if err != nil {
		a.failures.Inc()
		level.Warn(a.logger).Log("msg", "allocation failed", "slots", n, "err", err)
		return nil, err
	}
	if n >= LargeBlockSlots {
		level.Debug(a.logger).Log("msg", "large block allocated", "slots", n)
	}
	a.stats.recordAlloc(n)
	a.allocations.Inc()
	a.slots.Add(float64(n))
	a.liveSlots.Add(float64(n))
	return block, nil
}

func (a *InstrumentedAllocator[T]) Deallocate(block []T) {
	a.stats.recordFree(len(block))
	a.deallocations.Inc()
	a.liveSlots.Sub(float64(len(block)))
	a.inner.Deallocate(block)
}

func (a *InstrumentedAllocator[T]) Construct(block []T, i int, v T) {
	a.inner.Construct(block, i, v)
	a.stats.constructs.Add(1)
	a.constructs.Inc()
}

func (a *InstrumentedAllocator[T]) Destroy(block []T, i int) {
	a.inner.Destroy(block, i)
	a.stats.destroys.Add(1)
	a.destroys.Inc()
}

func (a *InstrumentedAllocator[T]) MaxSize() int { return a.inner.MaxSize() }

// Name returns the allocator label.
func (a *InstrumentedAllocator[T]) Name() string { return a.name }

// Stats returns the accounting observed through this wrapper.
func (a *InstrumentedAllocator[T]) Stats() api.AllocatorStats {
	return a.stats.snapshot()
}

var (
	_ api.Allocator[int] = (*InstrumentedAllocator[int])(nil)
	_ api.StatsProvider  = (*InstrumentedAllocator[int])(nil)
)
