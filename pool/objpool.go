// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed wrapper over sync.Pool used for size-class block parking.

package pool

import (
	"sync"
	"sync/atomic"
)

// ObjectPool parks reusable values.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is a typed sync.Pool that counts how often the creator had to
// run because nothing was parked.
type SyncPool[T any] struct {
	pool   sync.Pool
	misses atomic.Int64
}

// NewSyncPool creates a pool that calls creator on a miss.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	sp := &SyncPool[T]{}
	sp.pool.New = func() any {
		sp.misses.Add(1)
		return creator()
	}
	return sp
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// Misses returns how many values were created rather than reused.
func (sp *SyncPool[T]) Misses() int64 {
	return sp.misses.Load()
}

var _ ObjectPool[*[]int] = (*SyncPool[*[]int])(nil)
