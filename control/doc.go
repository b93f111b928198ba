// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime configuration, metrics and debug introspection for hioload-stl.
//
// ConfigStore keeps a flat snapshot of settings and notifies reload
// listeners. MetricsRegistry owns the Prometheus registry that instrumented
// allocators report into. DebugProbes evaluates named probes on demand;
// RegisterPlatformProbes adds OS and CPU details through golang.org/x/sys.
package control
