// File: facade/hioload.go
// Unified facade layer for hioload-stl.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Toolkit aggregates the runtime services behind a single value: logger,
// control plane, metrics registry and the allocator policy. Containers are
// built through the generic constructors below so that every vector of the
// process shares the configured allocation strategy and instrumentation.

package facade

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/constraints"

	"github.com/momentics/hioload-stl/adapters"
	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/list"
	"github.com/momentics/hioload-stl/ordmap"
	"github.com/momentics/hioload-stl/pool"
	"github.com/momentics/hioload-stl/vector"
)

var levelOptions = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"none":  level.AllowNone(),
}

// Toolkit is the main facade type.
type Toolkit struct {
	cfg     Config
	logger  log.Logger
	control *adapters.ControlAdapter
	created *prometheus.CounterVec
}

// New validates cfg and builds a Toolkit. A nil cfg selects DefaultConfig;
// a nil logger discards output. The logger is filtered by cfg.LogLevel.
func New(cfg *Config, logger log.Logger) (*Toolkit, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = level.NewFilter(log.With(logger, "component", "facade"), levelOptions[cfg.LogLevel])

	tk := &Toolkit{
		cfg:     *cfg,
		logger:  logger,
		control: adapters.NewControlAdapter(),
	}
	tk.created = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Metrics.Namespace,
		Name:      "containers_created_total",
		Help:      "Containers built through the toolkit, by kind.",
	}, []string{"kind"})
	tk.control.Metrics().Registry().MustRegister(tk.created)

	tk.control.SetMetric("allocator.kind", cfg.Allocator)
	if cfg.Debug.Enabled {
		tk.control.RegisterDebugProbe("config", func() any { return tk.cfg })
		tk.control.RegisterDebugProbe("reload", func() any { return tk.control.GetConfig() })
	}
	tk.control.OnReload(func() {
		level.Info(tk.logger).Log("msg", "runtime config reloaded", "keys", len(tk.control.GetConfig()))
	})

	level.Info(logger).Log("msg", "toolkit ready", "allocator", cfg.Allocator,
		"max_slots", cfg.MaxSlots, "metrics", cfg.Metrics.Enabled)
	return tk, nil
}

// Config returns a copy of the configuration.
func (tk *Toolkit) Config() Config { return tk.cfg }

// Logger returns the filtered facade logger.
func (tk *Toolkit) Logger() log.Logger { return tk.logger }

// Control returns the control plane.
func (tk *Toolkit) Control() api.Control { return tk.control }

// Registry returns the Prometheus registry allocators report into.
func (tk *Toolkit) Registry() *prometheus.Registry {
	return tk.control.Metrics().Registry()
}

// Stats returns metric samples merged with debug probe output.
func (tk *Toolkit) Stats() map[string]any { return tk.control.Stats() }

// Reload merges a YAML document into the runtime config store and notifies
// reload listeners. The allocator policy of the Toolkit is not affected.
func (tk *Toolkit) Reload(r io.Reader) error {
	return tk.control.Config().LoadYAML(r)
}

// Close waits for pending reload listeners.
func (tk *Toolkit) Close() {
	tk.control.Config().Wait()
}

// Allocator builds the configured allocator for T. name labels its metrics.
func Allocator[T any](tk *Toolkit, name string) api.Allocator[T] {
	a, err := pool.New[T](tk.cfg.Allocator)
	if err != nil {
		// Validate accepted the kind already.
		panic(err)
	}
	if tk.cfg.MaxSlots > 0 || tk.cfg.MaxBlock > 0 {
		a = pool.NewLimitAllocator(a, tk.cfg.MaxSlots, tk.cfg.MaxBlock)
	}
	if tk.cfg.Metrics.Enabled {
		a = pool.NewInstrumentedAllocator(a, tk.Registry(), tk.cfg.Metrics.Namespace, name, tk.logger)
	}
	return a
}

// NewVector creates a vector using the configured allocator. opts are
// applied after the toolkit defaults.
func NewVector[T any](tk *Toolkit, opts ...vector.Option[T]) *vector.Vector[T] {
	tk.created.WithLabelValues("vector").Inc()
	base := []vector.Option[T]{vector.WithAllocator(Allocator[T](tk, "vector"))}
	if tk.cfg.InitialCapacity > 0 {
		base = append(base, vector.WithCapacity[T](tk.cfg.InitialCapacity))
	}
	return vector.New(append(base, opts...)...)
}

// NewList creates a linked list.
func NewList[T any](tk *Toolkit) *list.List[T] {
	tk.created.WithLabelValues("list").Inc()
	return list.New[T]()
}

// NewMap creates an ordered map with the natural key ordering.
func NewMap[K constraints.Ordered, V any](tk *Toolkit) *ordmap.Map[K, V] {
	tk.created.WithLabelValues("map").Inc()
	return ordmap.New[K, V]()
}

// NewStack creates a stack over a toolkit vector.
func NewStack[T any](tk *Toolkit) *adapters.Stack[T] {
	tk.created.WithLabelValues("stack").Inc()
	return adapters.NewStackOn[T](NewVector[T](tk))
}

// NewQueue creates a queue over a linked list.
func NewQueue[T any](tk *Toolkit) *adapters.Queue[T] {
	tk.created.WithLabelValues("queue").Inc()
	return adapters.NewQueueOn[T](NewList[T](tk))
}
