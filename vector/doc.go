// Package vector
// Author: momentics <momentics@gmail.com>
//
// Generic dynamic array with allocator-driven storage and random-access
// iterators.
//
// A Vector owns one contiguous block obtained from an api.Allocator. The
// first Size() slots hold live values, the remaining Capacity()-Size() slots
// are raw. Growth never happens in place: a larger block is allocated, the
// live values are constructed into it, then destroyed in the old block,
// which is released. PushBack doubles the capacity (floor 1), so N pushes
// relocate fewer than 2N elements in total.
//
// Iterators alias the block they were issued from and own nothing. Any
// operation that reallocates invalidates every outstanding iterator; Insert
// and Erase without reallocation invalidate iterators at or after the
// mutation point. Using an invalidated iterator is undefined; building with
// -tags stldebug turns such use into an assertion panic.
//
// A Vector is not safe for concurrent use and carries no locks.
package vector
