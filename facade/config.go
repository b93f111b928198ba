// File: facade/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Toolkit configuration: defaults, YAML loading and validation.

package facade

import (
	"os"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/pool"
)

// MetricsConfig controls allocator instrumentation.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// DebugConfig controls extra debug probes.
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config holds parameters fixed for the lifetime of a Toolkit.
type Config struct {
	Allocator       string        `yaml:"allocator"`        // heap or pooled
	MaxSlots        int64         `yaml:"max_slots"`        // per-container live slot budget, 0 = unlimited
	MaxBlock        int           `yaml:"max_block"`        // largest single block, 0 = allocator limit
	InitialCapacity int           `yaml:"initial_capacity"` // slots reserved by NewVector
	Metrics         MetricsConfig `yaml:"metrics"`
	Debug           DebugConfig   `yaml:"debug"`
	LogLevel        string        `yaml:"log_level"` // debug, info, warn, error, none
}

// DefaultConfig returns default configuration values. Every boolean
// defaults to false so that a file can only switch features on.
func DefaultConfig() *Config {
	return &Config{
		Allocator:       pool.KindHeap, // plain Go heap
		MaxSlots:        0,             // no budget
		MaxBlock:        0,             // no block cap
		InitialCapacity: 0,             // grow from empty
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "stl",
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file and merges its non-zero values over
// DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig on an in-memory document.
func ParseConfig(data []byte) (*Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg := DefaultConfig()
	if err := mergo.Merge(cfg, file, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "merge config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown allocator kinds, log levels and negative limits.
func (c *Config) Validate() error {
	if _, err := pool.New[byte](c.Allocator); err != nil {
		return err
	}
	if _, ok := levelOptions[c.LogLevel]; !ok {
		return errors.Wrapf(api.ErrInvalidArgument, "unknown log level %q", c.LogLevel)
	}
	if c.MaxSlots < 0 || c.MaxBlock < 0 || c.InitialCapacity < 0 {
		return errors.Wrap(api.ErrInvalidArgument, "negative limit")
	}
	return nil
}
