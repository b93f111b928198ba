// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with YAML loading and reload propagation.

package control

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigStore is a flat key/value map with snapshot reads and reload
// listeners. Nested YAML sections are stored under dotted keys.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
	pending   sync.WaitGroup
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// Get returns a single value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// SetConfig merges new values and dispatches reload.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	cs.dispatchReload()
}

// LoadYAML decodes a YAML document and merges it as SetConfig does.
func (cs *ConfigStore) LoadYAML(r io.Reader) error {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode config")
	}
	flat := make(map[string]any)
	flatten("", doc, flat)
	cs.SetConfig(flat)
	return nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = v
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// Wait blocks until every dispatched listener has returned.
func (cs *ConfigStore) Wait() {
	cs.pending.Wait()
}

// dispatchReload starts every listener on its own goroutine.
func (cs *ConfigStore) dispatchReload() {
	for _, fn := range cs.listeners {
		cs.pending.Add(1)
		go func() {
			defer cs.pending.Done()
			fn()
		}()
	}
}
