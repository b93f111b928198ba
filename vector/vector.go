// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dynamic array container: capacity management, element access and
// structural mutation.

package vector

import (
	"iter"
	"slices"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/internal/assert"
	"github.com/momentics/hioload-stl/pool"
)

// blockState identifies one allocated block. Iterators keep a pointer to
// the state of the block they were issued from; the container clears valid
// when the block is released.
type blockState[T any] struct {
	owner *Vector[T]
	valid bool
}

// Vector is a contiguous, growable sequence of T.
type Vector[T any] struct {
	alloc   api.Allocator[T]
	buf     []T // len(buf) is the capacity
	size    int
	blk     *blockState[T]
	initCap int

	reallocs int
	relocs   int
}

// New creates an empty vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	v.init()
	if v.initCap > 0 {
		v.Reserve(v.initCap)
	}
	return v
}

// NewFilled creates a vector holding n copies of val with capacity n.
func NewFilled[T any](n int, val T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	v.Assign(n, val)
	return v
}

// NewFromSlice creates a vector holding a copy of s.
func NewFromSlice[T any](s []T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	v.AssignSlice(s)
	return v
}

// NewFromRange creates a vector holding the values of [first, last).
func NewFromRange[T any, I api.InputIterator[T, I]](first, last I, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	v.AssignSlice(collect[T](first, last))
	return v
}

// init makes the zero value usable.
func (v *Vector[T]) init() {
	if v.alloc == nil {
		v.alloc = pool.Default[T]()
	}
	if v.blk == nil {
		v.blk = &blockState[T]{owner: v, valid: true}
	}
}

// collect drains an input range into a temporary slice. Input cursors are
// single pass, and the source may alias the destination container.
func collect[T any, I api.InputIterator[T, I]](first, last I) []T {
	var out []T
	for it := first; !it.Eq(last); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of reserved slots.
func (v *Vector[T]) Capacity() int { return len(v.buf) }

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest capacity the allocator can provide.
func (v *Vector[T]) MaxSize() int {
	v.init()
	return v.alloc.MaxSize()
}

// Allocator returns the element storage strategy in use.
func (v *Vector[T]) Allocator() api.Allocator[T] {
	v.init()
	return v.alloc
}

// Reallocations returns how many times the buffer has been replaced.
func (v *Vector[T]) Reallocations() int { return v.reallocs }

// Relocations returns how many elements were copied into a new buffer.
func (v *Vector[T]) Relocations() int { return v.relocs }

// Data returns a view of the live elements. The view is invalidated like an
// iterator and cannot be appended into the raw tail.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Index returns element i without bounds checking against Size().
func (v *Vector[T]) Index(i int) T {
	if assert.Enabled {
		assert.That(i >= 0 && i < v.size, "vector index %d out of range [0,%d)", i, v.size)
	}
	return v.buf[i]
}

// Ref returns a pointer to element i without bounds checking against Size().
func (v *Vector[T]) Ref(i int) *T {
	if assert.Enabled {
		assert.That(i >= 0 && i < v.size, "vector index %d out of range [0,%d)", i, v.size)
	}
	return &v.buf[i]
}

// SetIndex overwrites element i without bounds checking against Size().
func (v *Vector[T]) SetIndex(i int, val T) {
	if assert.Enabled {
		assert.That(i >= 0 && i < v.size, "vector index %d out of range [0,%d)", i, v.size)
	}
	v.buf[i] = val
}

// At returns element i, or an error wrapping api.ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, api.OutOfRange(i, v.size)
	}
	return v.buf[i], nil
}

// Front returns the first element, or api.ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "front")
	}
	return v.buf[0], nil
}

// Back returns the last element, or api.ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmpty, "back")
	}
	return v.buf[v.size-1], nil
}

// allocate obtains a block of n slots. Allocation failure is fatal.
func (v *Vector[T]) allocate(n int) []T {
	if n == 0 {
		return nil
	}
	block, err := v.alloc.Allocate(n)
	if err != nil {
		panic(errors.Wrapf(err, "vector: allocate %d slots", n))
	}
	return block
}

// release destroys nothing; it hands the current block back and invalidates
// every iterator issued from it.
func (v *Vector[T]) release() {
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
	}
	v.blk.valid = false
	v.blk = &blockState[T]{owner: v, valid: true}
	v.buf = nil
}

// adopt installs a freshly built block holding size live elements.
func (v *Vector[T]) adopt(block []T, size int) {
	v.release()
	v.buf = block
	v.size = size
	v.reallocs++
}

// destroyAll destroys the live elements of the current block.
func (v *Vector[T]) destroyAll() {
	for i := 0; i < v.size; i++ {
		v.alloc.Destroy(v.buf, i)
	}
}

// relocate moves the live elements into a block of exactly n slots. The new
// block is fully built before the old one is touched.
func (v *Vector[T]) relocate(n int) {
	block := v.allocate(n)
	for i := 0; i < v.size; i++ {
		v.alloc.Construct(block, i, v.buf[i])
	}
	size := v.size
	v.destroyAll()
	v.relocs += size
	v.adopt(block, size)
}

// grown returns the capacity to use when at least need slots are required:
// double the current capacity, at least need, at least 1, clamped to the
// allocator's max size when doubling overshoots it.
func (v *Vector[T]) grown(need int) int {
	c := 2 * len(v.buf)
	if limit := v.alloc.MaxSize(); c > limit {
		c = limit
	}
	if c < need {
		c = need
	}
	if c < 1 {
		c = 1
	}
	return c
}

// Reserve ensures Capacity() >= n, reallocating to exactly n slots when the
// current capacity is smaller.
func (v *Vector[T]) Reserve(n int) {
	v.init()
	if n <= len(v.buf) {
		return
	}
	v.relocate(n)
}

// ShrinkToFit reallocates to exactly Size() slots.
func (v *Vector[T]) ShrinkToFit() {
	v.init()
	if v.size == len(v.buf) {
		return
	}
	if v.size == 0 {
		v.release()
		v.reallocs++
		return
	}
	v.relocate(v.size)
}

// PushBack appends val, doubling the capacity when full.
func (v *Vector[T]) PushBack(val T) {
	v.init()
	if v.size == len(v.buf) {
		v.relocate(v.grown(v.size + 1))
	}
	v.alloc.Construct(v.buf, v.size, val)
	v.size++
}

// PopBack destroys the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.alloc.Destroy(v.buf, v.size)
}

// PopFront erases the first element. It is a no-op on an empty vector and
// costs O(Size()).
func (v *Vector[T]) PopFront() {
	if v.size == 0 {
		return
	}
	v.Erase(v.Begin())
}

// checkPos validates an insertion or erasure position in debug builds.
func (v *Vector[T]) checkPos(pos Iterator[T], allowEnd bool) {
	if !assert.Enabled {
		return
	}
	assert.That(pos.blk == v.blk && pos.blk.valid, "iterator does not belong to this vector or was invalidated")
	limit := v.size
	if !allowEnd {
		limit--
	}
	assert.That(pos.pos >= 0 && pos.pos <= limit, "iterator position %d out of range [0,%d]", pos.pos, limit)
}

// insertValues inserts vals before index p and returns an iterator to the
// first inserted element.
func (v *Vector[T]) insertValues(p int, vals []T) Iterator[T] {
	n := len(vals)
	if n == 0 {
		return v.iter(p)
	}
	old := v.size
	if old+n > len(v.buf) {
		block := v.allocate(v.grown(old + n))
		for i := 0; i < p; i++ {
			v.alloc.Construct(block, i, v.buf[i])
		}
		for j, val := range vals {
			v.alloc.Construct(block, p+j, val)
		}
		for i := p; i < old; i++ {
			v.alloc.Construct(block, i+n, v.buf[i])
		}
		v.destroyAll()
		v.relocs += old
		v.adopt(block, old+n)
		return v.iter(p)
	}
	// Shift the suffix toward the end, back to front. Destinations past the
	// old size are raw and get constructed; the rest are assigned.
	for i := old - 1; i >= p; i-- {
		if dst := i + n; dst >= old {
			v.alloc.Construct(v.buf, dst, v.buf[i])
		} else {
			v.buf[dst] = v.buf[i]
		}
	}
	for j, val := range vals {
		if k := p + j; k < old {
			v.buf[k] = val
		} else {
			v.alloc.Construct(v.buf, k, val)
		}
	}
	v.size = old + n
	return v.iter(p)
}

// Insert places val before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos Iterator[T], val T) Iterator[T] {
	v.init()
	v.checkPos(pos, true)
	return v.insertValues(pos.pos, []T{val})
}

// InsertN places n copies of val before pos and returns an iterator to the
// first of them.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, val T) Iterator[T] {
	v.init()
	v.checkPos(pos, true)
	if n <= 0 {
		return v.iter(pos.pos)
	}
	vals := make([]T, n)
	for i := range vals {
		vals[i] = val
	}
	return v.insertValues(pos.pos, vals)
}

// InsertSlice places a copy of s before pos and returns an iterator to the
// first inserted element.
func (v *Vector[T]) InsertSlice(pos Iterator[T], s []T) Iterator[T] {
	v.init()
	v.checkPos(pos, true)
	vals := make([]T, len(s))
	copy(vals, s)
	return v.insertValues(pos.pos, vals)
}

// InsertRange places the values of [first, last) before pos and returns an
// iterator to the first inserted element. The range may alias v.
func InsertRange[T any, I api.InputIterator[T, I]](v *Vector[T], pos Iterator[T], first, last I) Iterator[T] {
	v.init()
	v.checkPos(pos, true)
	return v.insertValues(pos.pos, collect[T](first, last))
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place, or End().
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	v.checkPos(pos, false)
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes [first, last) by shifting the tail down. The capacity
// is unchanged. It returns an iterator to the element now at first, or End().
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	v.init()
	v.checkPos(first, true)
	v.checkPos(last, true)
	n := last.pos - first.pos
	if n <= 0 {
		return v.iter(first.pos)
	}
	for i := last.pos; i < v.size; i++ {
		v.buf[i-n] = v.buf[i]
	}
	for i := v.size - n; i < v.size; i++ {
		v.alloc.Destroy(v.buf, i)
	}
	v.size -= n
	return v.iter(first.pos)
}

// Clear destroys every element. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.init()
	v.destroyAll()
	v.size = 0
}

// Release destroys every element and hands the block back to the
// allocator. The vector is left empty with zero capacity and stays usable.
func (v *Vector[T]) Release() {
	v.init()
	v.Clear()
	v.release()
}

// Assign replaces the contents with n copies of val.
func (v *Vector[T]) Assign(n int, val T) {
	v.Clear()
	if n <= 0 {
		return
	}
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.alloc.Construct(v.buf, i, val)
	}
	v.size = n
}

// AssignSlice replaces the contents with a copy of s. s may alias v.
func (v *Vector[T]) AssignSlice(s []T) {
	if v.size > 0 {
		s = slices.Clone(s)
	}
	v.Clear()
	v.Reserve(len(s))
	for i, val := range s {
		v.alloc.Construct(v.buf, i, val)
	}
	v.size = len(s)
}

// AssignRange replaces the contents of v with the values of [first, last).
// The range may alias v.
func AssignRange[T any, I api.InputIterator[T, I]](v *Vector[T], first, last I) {
	v.init()
	v.AssignSlice(collect[T](first, last))
}

// Resize destroys the tail when n < Size(), or appends copies of val
// through the PushBack growth path when n > Size(). A negative n empties
// the vector.
func (v *Vector[T]) Resize(n int, val T) {
	v.init()
	n = max(n, 0)
	for v.size > n {
		v.PopBack()
	}
	for v.size < n {
		v.PushBack(val)
	}
}

// Swap exchanges contents, capacity and allocator with other in O(1).
// Iterators follow their elements into the other vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.init()
	other.init()
	v.alloc, other.alloc = other.alloc, v.alloc
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.blk, other.blk = other.blk, v.blk
	v.blk.owner, other.blk.owner = v, other
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.relocs, other.relocs = other.relocs, v.relocs
}

// Clone returns a deep copy with the same capacity and allocator.
func (v *Vector[T]) Clone() *Vector[T] {
	v.init()
	c := &Vector[T]{alloc: v.alloc}
	c.init()
	c.buf = c.allocate(len(v.buf))
	for i := 0; i < v.size; i++ {
		c.alloc.Construct(c.buf, i, v.buf[i])
	}
	c.size = v.size
	return c
}

// CopyFrom replaces the contents of v with a copy of other's elements.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.init()
	v.AssignSlice(other.Data())
}

// iter returns an iterator at index p of the current block.
func (v *Vector[T]) iter(p int) Iterator[T] {
	return Iterator[T]{buf: v.buf, pos: p, blk: v.blk}
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	v.init()
	return v.iter(0)
}

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] {
	v.init()
	return v.iter(v.size)
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return NewReverseIterator(v.End())
}

// REnd returns the reverse past-the-end iterator.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return NewReverseIterator(v.Begin())
}

// All yields index/value pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

var (
	_ api.BackSequence[int]      = (*Vector[int])(nil)
	_ api.FrontBackSequence[int] = (*Vector[int])(nil)
)
