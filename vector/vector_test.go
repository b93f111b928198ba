package vector_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/fake"
	"github.com/momentics/hioload-stl/vector"
)

func recorded[T any]() (*fake.RecordingAllocator[T], vector.Option[T]) {
	a := fake.NewRecordingAllocator[T]()
	return a, vector.WithAllocator[T](a)
}

func TestVector_PushAtPop(t *testing.T) {
	v := vector.New[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	require.Equal(t, 1, v.Begin().Value())
	require.Equal(t, 3, v.End().Diff(v.Begin()))

	_, err := v.At(3)
	require.Error(t, err)
	require.True(t, errors.Is(err, api.ErrOutOfRange))

	got, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3, got)

	v.PopBack()
	v.PopBack()
	v.PopBack()
	require.True(t, v.Empty())

	// popping an empty vector is a no-op
	v.PopBack()
	require.Equal(t, 0, v.Size())
}

func TestVector_FrontBackEmpty(t *testing.T) {
	v := vector.New[string]()
	_, err := v.Front()
	require.True(t, errors.Is(err, api.ErrEmpty))
	require.True(t, errors.Is(err, api.ErrOutOfRange))
	_, err = v.Back()
	require.True(t, errors.Is(err, api.ErrEmpty))

	v.PushBack("a")
	v.PushBack("b")
	front, err := v.Front()
	require.NoError(t, err)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, "a", front)
	assert.Equal(t, "b", back)

	_, err = v.At(-1)
	require.True(t, errors.Is(err, api.ErrOutOfRange))
}

func TestVector_SizeNeverExceedsCapacity(t *testing.T) {
	v := vector.New[int]()
	var caps []int
	for i := 0; i < 100; i++ {
		v.PushBack(i)
		require.Equal(t, i+1, v.Size())
		require.GreaterOrEqual(t, v.Capacity(), v.Size())
		if len(caps) == 0 || caps[len(caps)-1] != v.Capacity() {
			caps = append(caps, v.Capacity())
		}
	}
	require.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128}, caps)
}

func TestVector_AmortizedGrowth(t *testing.T) {
	for _, n := range []int{1, 10, 1000, 100000} {
		v := vector.New[int]()
		for i := 0; i < n; i++ {
			v.PushBack(i)
		}
		require.LessOrEqual(t, v.Relocations(), 2*n, "n=%d", n)
	}
}

func TestVector_ReserveThenPushNoRealloc(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.New(opt)
	v.Reserve(64)
	before := v.Reallocations()
	allocs := a.Allocations
	for i := 0; i < 64; i++ {
		v.PushBack(i)
	}
	require.Equal(t, before, v.Reallocations())
	require.Equal(t, allocs, a.Allocations)
	require.Equal(t, 64, v.Capacity())
}

func TestVector_ReserveEightPushNine(t *testing.T) {
	v := vector.New(vector.WithCapacity[int](8))
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 8, v.Capacity())
	base := v.Reallocations()
	for i := 5; i < 9; i++ {
		v.PushBack(i)
	}
	require.GreaterOrEqual(t, v.Capacity(), 9)
	require.Equal(t, base+1, v.Reallocations())
}

func TestVector_ReserveSmallerIsNoop(t *testing.T) {
	v := vector.NewFilled(4, 7)
	require.Equal(t, 4, v.Capacity())
	v.Reserve(2)
	require.Equal(t, 4, v.Capacity())
	require.Equal(t, 1, v.Reallocations())
}

func TestVector_InsertMiddle(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	it := v.Insert(v.Begin().Add(1), 99)
	require.Equal(t, 99, it.Value())
	require.Equal(t, 1, it.Index())
	require.Equal(t, 4, v.Size())
	require.Empty(t, cmp.Diff([]int{1, 99, 2, 3}, v.Data()))
}

func TestVector_InsertNoRealloc(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.New(opt)
	v.Reserve(10)
	v.AssignSlice([]int{1, 2, 3, 4})
	allocs := a.Allocations

	v.InsertN(v.Begin().Add(1), 3, 0)
	require.Equal(t, allocs, a.Allocations)
	require.Empty(t, cmp.Diff([]int{1, 0, 0, 0, 2, 3, 4}, v.Data()))

	// gap reaching past the old size
	v.InsertSlice(v.End().Sub(1), []int{8, 9})
	require.Empty(t, cmp.Diff([]int{1, 0, 0, 0, 2, 3, 8, 9, 4}, v.Data()))
	require.Empty(t, a.Violations)
	require.Equal(t, v.Size(), a.LiveSlots())
}

func TestVector_InsertWithRealloc(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.NewFromSlice([]int{1, 2, 3}, opt)
	it := v.InsertN(v.Begin().Add(2), 5, 7)
	require.Equal(t, 2, it.Index())
	require.Equal(t, 7, it.Value())
	require.Empty(t, cmp.Diff([]int{1, 2, 7, 7, 7, 7, 7, 3}, v.Data()))
	require.Equal(t, 8, v.Capacity())
	require.Empty(t, a.Violations)
	require.Equal(t, 1, a.OutstandingBlocks())
}

func TestVector_InsertAtEndAndEmpty(t *testing.T) {
	v := vector.New[int]()
	it := v.Insert(v.End(), 5)
	require.Equal(t, 5, it.Value())
	it = v.InsertN(v.End(), 0, 1)
	require.True(t, it.Eq(v.End()))
	require.Equal(t, 1, v.Size())
}

func TestVector_InsertRangeAliasing(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	vector.InsertRange[int](v, v.Begin().Add(1), v.Begin(), v.End())
	require.Empty(t, cmp.Diff([]int{1, 1, 2, 3, 2, 3}, v.Data()))

	v.Reserve(32)
	vector.InsertRange[int](v, v.Begin(), v.Begin().Add(4), v.End())
	require.Empty(t, cmp.Diff([]int{2, 3, 1, 1, 2, 3, 2, 3}, v.Data()))
}

func TestVector_AssignSliceAliasing(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	v.AssignSlice(v.Data()[1:])
	require.Empty(t, cmp.Diff([]int{2, 3}, v.Data()))

	v.AssignSlice(v.Data())
	require.Empty(t, cmp.Diff([]int{2, 3}, v.Data()))

	w := vector.NewFromSlice([]int{7, 8, 9})
	w.CopyFrom(w)
	require.Empty(t, cmp.Diff([]int{7, 8, 9}, w.Data()))
}

func TestVector_ResizeNegativeEmpties(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2})
	v.Resize(-1, 0)
	require.True(t, v.Empty())
	require.Equal(t, 2, v.Capacity())

	v.Resize(-5, 0)
	require.True(t, v.Empty())
}

func TestVector_InsertEraseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(20)
		src := make([]int, n)
		for i := range src {
			src[i] = rng.Intn(1000)
		}
		v := vector.NewFromSlice(src)
		k := 0
		if n > 0 {
			k = rng.Intn(n + 1)
		}
		v.Erase(v.Insert(v.Begin().Add(k), -1))
		require.Empty(t, cmp.Diff(src, v.Data()), "trial %d k=%d", trial, k)
		require.Equal(t, n, v.Size())
	}
}

func TestVector_Erase(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.NewFromSlice([]int{0, 1, 2, 3, 4, 5}, opt)
	capBefore := v.Capacity()
	allocs := a.Allocations

	it := v.Erase(v.Begin().Add(2))
	require.Equal(t, 3, it.Value())
	require.Empty(t, cmp.Diff([]int{0, 1, 3, 4, 5}, v.Data()))

	first, last := v.Begin().Add(1), v.Begin().Add(3)
	old := v.Size()
	it = v.EraseRange(first, last)
	require.Equal(t, old-last.Diff(first), v.Size())
	require.Equal(t, 4, it.Value())

	it = v.EraseRange(v.Begin().Add(1), v.End())
	require.True(t, it.Eq(v.End()))
	require.Empty(t, cmp.Diff([]int{0}, v.Data()))

	require.Equal(t, capBefore, v.Capacity())
	require.Equal(t, allocs, a.Allocations)
	require.Empty(t, a.Violations)
	require.Equal(t, 1, a.LiveSlots())

	// empty range
	it = v.EraseRange(v.Begin(), v.Begin())
	require.Equal(t, 0, it.Index())
	require.Equal(t, 1, v.Size())
}

func TestVector_CloneIndependence(t *testing.T) {
	a := vector.NewFromSlice([]int{1, 2, 3})
	a.Reserve(10)
	b := a.Clone()
	require.True(t, vector.Equal(a, b))
	require.Equal(t, a.Capacity(), b.Capacity())

	a.PushBack(4)
	a.SetIndex(0, 100)
	require.Empty(t, cmp.Diff([]int{1, 2, 3}, b.Data()))

	b.PopBack()
	require.Empty(t, cmp.Diff([]int{100, 2, 3, 4}, a.Data()))
	require.False(t, vector.Equal(a, b))

	c := vector.New[int]()
	c.CopyFrom(a)
	require.True(t, vector.Equal(a, c))
	c.CopyFrom(c)
	require.Equal(t, 4, c.Size())
}

func TestVector_AssignAndResize(t *testing.T) {
	a, opt := recorded[string]()
	v := vector.NewFilled(3, "x", opt)
	require.Equal(t, 3, v.Capacity())

	v.Assign(2, "y")
	require.Equal(t, 3, v.Capacity())
	require.Empty(t, cmp.Diff([]string{"y", "y"}, v.Data()))

	v.Assign(5, "z")
	require.Equal(t, 5, v.Capacity())
	require.Empty(t, cmp.Diff([]string{"z", "z", "z", "z", "z"}, v.Data()))

	v.Resize(2, "")
	require.Empty(t, cmp.Diff([]string{"z", "z"}, v.Data()))
	v.Resize(4, "w")
	require.Empty(t, cmp.Diff([]string{"z", "z", "w", "w"}, v.Data()))
	require.Equal(t, 5, v.Capacity())
	v.Resize(6, "q")
	require.Equal(t, 10, v.Capacity())

	src := vector.NewFromSlice([]string{"a", "b", "c"})
	vector.AssignRange[string](v, src.RBegin(), src.REnd())
	require.Empty(t, cmp.Diff([]string{"c", "b", "a"}, v.Data()))

	require.Empty(t, a.Violations)
	require.Equal(t, v.Size(), a.LiveSlots())
}

func TestVector_ClearKeepsCapacity(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	v.Clear()
	require.True(t, v.Empty())
	require.Equal(t, 3, v.Capacity())
}

func TestVector_ReleaseDestroysOnce(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.New(opt)
	for i := 0; i < 37; i++ {
		v.PushBack(i)
	}
	v.Insert(v.Begin().Add(5), 5)
	v.Erase(v.Begin())
	v.Release()

	require.Empty(t, a.Violations)
	require.Equal(t, a.Constructs, a.Destroys)
	require.Equal(t, a.Allocations, a.Deallocations)
	require.Zero(t, a.OutstandingBlocks())
	require.Zero(t, v.Capacity())

	// still usable
	v.PushBack(1)
	require.Equal(t, 1, v.Size())
}

func TestVector_ShrinkToFit(t *testing.T) {
	v := vector.New[int]()
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}
	require.Equal(t, 8, v.Capacity())
	v.ShrinkToFit()
	require.Equal(t, 5, v.Capacity())
	require.Empty(t, cmp.Diff([]int{0, 1, 2, 3, 4}, v.Data()))
	v.Clear()
	v.ShrinkToFit()
	require.Zero(t, v.Capacity())
}

func TestVector_Swap(t *testing.T) {
	a := vector.NewFromSlice([]int{1, 2})
	b := vector.NewFromSlice([]int{7, 8, 9})
	b.Reserve(6)
	itA := a.Begin()

	a.Swap(b)
	require.Empty(t, cmp.Diff([]int{7, 8, 9}, a.Data()))
	require.Equal(t, 6, a.Capacity())
	require.Empty(t, cmp.Diff([]int{1, 2}, b.Data()))
	require.Equal(t, 2, b.Capacity())

	// iterators follow their elements
	require.True(t, itA.Eq(b.Begin()))
	require.Equal(t, 1, itA.Value())
}

func TestVector_ReverseIteration(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3, 4})
	var got []int
	for it := v.RBegin(); !it.Eq(v.REnd()); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	got = got[:0]
	for _, x := range v.Backward() {
		got = append(got, x)
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)
}

func TestVector_AllStopsEarly(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3, 4})
	var seen []int
	for i, x := range v.All() {
		if i == 2 {
			break
		}
		seen = append(seen, x)
	}
	require.Equal(t, []int{1, 2}, seen)
}

func TestVector_PopFront(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	v.PopFront()
	require.Empty(t, cmp.Diff([]int{2, 3}, v.Data()))
	v.PopFront()
	v.PopFront()
	v.PopFront()
	require.True(t, v.Empty())
}

func TestVector_RefAndIndex(t *testing.T) {
	v := vector.NewFromSlice([]int{1, 2, 3})
	*v.Ref(1) = 20
	require.Equal(t, 20, v.Index(1))
	v.Begin().Set(10)
	*v.End().Prev().Ptr() = 30
	require.Empty(t, cmp.Diff([]int{10, 20, 30}, v.Data()))
}

func TestVector_ZeroValueUsable(t *testing.T) {
	var v vector.Vector[int]
	require.True(t, v.Begin().Eq(v.End()))
	v.PushBack(3)
	require.Equal(t, 1, v.Capacity())
	require.NotNil(t, v.Allocator())
}

func TestVector_FromRange(t *testing.T) {
	src := vector.NewFromSlice([]int{5, 6, 7})
	v := vector.NewFromRange[int](src.Begin().Add(1), src.End())
	require.Empty(t, cmp.Diff([]int{6, 7}, v.Data()))
	require.Equal(t, 2, v.Capacity())
}

func TestVector_AllocationFailurePanicsWithoutDamage(t *testing.T) {
	a, opt := recorded[int]()
	v := vector.NewFromSlice([]int{1, 2}, opt)
	a.FailAfter(0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, api.ErrAllocationFailed))

		require.Empty(t, cmp.Diff([]int{1, 2}, v.Data()))
		require.Equal(t, 2, v.Capacity())
		require.Empty(t, a.Violations)
	}()
	v.PushBack(3)
}

func TestVector_MaxSizeFromAllocator(t *testing.T) {
	_, opt := recorded[int]()
	v := vector.New(opt)
	require.Equal(t, 1<<30, v.MaxSize())
}
