// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics backed by a Prometheus registry. Allocators register their
// collectors on Registry(); ad-hoc numeric values set through Set become
// gauges on the same registry.

package control

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRegistry holds Prometheus collectors plus non-numeric values.
type MetricsRegistry struct {
	mu      sync.RWMutex
	reg     *prometheus.Registry
	gauges  map[string]prometheus.Gauge
	values  map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		reg:    prometheus.NewRegistry(),
		gauges: make(map[string]prometheus.Gauge),
		values: make(map[string]any),
	}
}

// Registry exposes the underlying Prometheus registry.
func (mr *MetricsRegistry) Registry() *prometheus.Registry {
	return mr.reg
}

// MetricName maps an arbitrary key onto a valid Prometheus metric name.
func MetricName(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// Set sets or updates a metric key. Numeric values are exported as a gauge
// named MetricName(key); anything else is kept as-is for snapshots.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.updated = time.Now()
	f, ok := toFloat(value)
	if !ok {
		mr.values[key] = value
		return
	}
	g, ok := mr.gauges[key]
	if !ok {
		g = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricName(key),
			Help: "Runtime value " + key + ".",
		})
		if err := mr.reg.Register(g); err != nil {
			mr.values[key] = value
			return
		}
		mr.gauges[key] = g
	}
	g.Set(f)
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns every counter, gauge and untyped sample keyed by
// metric name, with labels rendered as name{k="v",...}, plus the
// non-numeric values.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.values))
	for k, v := range mr.values {
		out[k] = v
	}
	families, err := mr.reg.Gather()
	if err != nil {
		out["metrics.gather_error"] = err.Error()
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				parts := make([]string, 0, len(labels))
				for _, lp := range labels {
					parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
				}
				key += "{" + strings.Join(parts, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetUntyped() != nil:
				out[key] = m.GetUntyped().GetValue()
			}
		}
	}
	return out
}
