// File: cmd/stlbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// stlbench exercises the containers under a chosen allocator and reports
// growth behaviour, memory footprint and allocator metrics.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/momentics/hioload-stl/facade"
)

type globalFlags struct {
	configFile string
	allocator  string
	maxSlots   int64
	logLevel   string
	metrics    bool
}

func (g *globalFlags) toolkit() (*facade.Toolkit, error) {
	cfg := facade.DefaultConfig()
	if g.configFile != "" {
		var err error
		if cfg, err = facade.LoadConfig(g.configFile); err != nil {
			return nil, err
		}
	}
	if g.allocator != "" {
		cfg.Allocator = g.allocator
	}
	if g.maxSlots > 0 {
		cfg.MaxSlots = g.maxSlots
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	cfg.Metrics.Enabled = cfg.Metrics.Enabled || g.metrics
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return facade.New(cfg, logger)
}

func printStats(tk *facade.Toolkit) {
	stats := tk.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-60s %v\n", k, stats[k])
	}
}

func main() {
	app := kingpin.New("stlbench", "Exercise hioload-stl containers and report allocator behaviour.")
	var g globalFlags
	app.Flag("config", "YAML config file").StringVar(&g.configFile)
	app.Flag("allocator", "Allocator kind (heap or pooled)").StringVar(&g.allocator)
	app.Flag("max-slots", "Live slot budget per container, 0 for none").Int64Var(&g.maxSlots)
	app.Flag("log.level", "Log level (debug, info, warn, error, none)").StringVar(&g.logLevel)
	app.Flag("metrics", "Enable allocator metrics and print them").BoolVar(&g.metrics)

	addGrowthCommand(app, &g)
	addChurnCommand(app, &g)
	addQueueCommand(app, &g)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(log.NewLogfmtLogger(os.Stderr)).Log("msg", "stlbench failed", "err", err)
		os.Exit(1)
	}
}
