package list_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-stl/list"
)

func TestSplice(t *testing.T) {
	a := list.NewFromSlice([]int{1, 5})
	b := list.NewFromSlice([]int{2, 3, 4})
	moved := b.Begin()

	a.Splice(a.Begin().Next(), b)
	require.Equal(t, []int{1, 2, 3, 4, 5}, a.Slice())
	require.True(t, b.Empty())
	require.Equal(t, 2, moved.Value())

	// self splice is a no-op
	a.Splice(a.End(), a)
	require.Equal(t, 5, a.Size())
}

func TestSpliceOne(t *testing.T) {
	a := list.NewFromSlice([]int{1, 2, 3})
	b := list.NewFromSlice([]int{9})
	a.SpliceOne(a.Begin(), b, b.Begin())
	require.Equal(t, []int{9, 1, 2, 3}, a.Slice())
	require.Zero(t, b.Size())

	// move the last element to the front of the same list
	a.SpliceOne(a.Begin(), a, a.End().Prev())
	require.Equal(t, []int{3, 9, 1, 2}, a.Slice())
	require.Equal(t, 4, a.Size())

	// already in place
	a.SpliceOne(a.Begin().Next(), a, a.Begin())
	require.Equal(t, []int{3, 9, 1, 2}, a.Slice())
}

func TestSpliceRange(t *testing.T) {
	a := list.NewFromSlice([]int{1, 2})
	b := list.NewFromSlice([]int{7, 8, 9})
	a.SpliceRange(a.End(), b, b.Begin().Next(), b.End())
	require.Equal(t, []int{1, 2, 8, 9}, a.Slice())
	require.Equal(t, []int{7}, b.Slice())
	require.Equal(t, 4, a.Size())
	require.Equal(t, 1, b.Size())

	a.SpliceRange(a.Begin(), a, a.Begin().Next().Next(), a.End())
	require.Equal(t, []int{8, 9, 1, 2}, a.Slice())
	require.Equal(t, 4, a.Size())
}

func TestRemoveUnique(t *testing.T) {
	l := list.NewFromSlice([]int{1, 1, 2, 3, 3, 3, 1, 4})
	require.Equal(t, 3, list.Unique(l))
	require.Equal(t, []int{1, 2, 3, 1, 4}, l.Slice())

	require.Equal(t, 2, list.Remove(l, 1))
	require.Equal(t, []int{2, 3, 4}, l.Slice())

	require.Equal(t, 2, l.RemoveIf(func(v int) bool { return v%2 == 0 }))
	require.Equal(t, []int{3}, l.Slice())
	require.Zero(t, list.Unique(l))
}

type item struct {
	key, seq int
}

func TestMerge(t *testing.T) {
	a := list.NewFromSlice([]int{1, 3, 5, 7})
	b := list.NewFromSlice([]int{0, 2, 3, 8, 9})
	list.Merge(a, b)
	require.Equal(t, []int{0, 1, 2, 3, 3, 5, 7, 8, 9}, a.Slice())
	require.True(t, b.Empty())
	require.Equal(t, 9, a.Size())

	// equal keys from the receiver come first
	x := list.NewFromSlice([]item{{1, 0}, {2, 0}})
	y := list.NewFromSlice([]item{{1, 1}, {2, 1}})
	x.MergeFunc(y, func(p, q item) bool { return p.key < q.key })
	require.Equal(t, []item{{1, 0}, {1, 1}, {2, 0}, {2, 1}}, x.Slice())

	empty := list.New[int]()
	list.Merge(empty, a)
	require.Equal(t, 9, empty.Size())
}

func TestSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		src := make([]int, rng.Intn(50))
		for i := range src {
			src[i] = rng.Intn(20)
		}
		l := list.NewFromSlice(src)
		list.Sort(l)
		want := append([]int(nil), src...)
		sort.Ints(want)
		require.Equal(t, len(want), l.Size())
		if len(want) > 0 {
			require.Equal(t, want, l.Slice())
		}
	}
}

func TestSortFuncStableKeepsIterators(t *testing.T) {
	l := list.NewFromSlice([]item{{3, 0}, {1, 0}, {3, 1}, {1, 1}})
	third := l.Begin().Next().Next()
	l.SortFunc(func(p, q item) bool { return p.key < q.key })
	require.Equal(t, []item{{1, 0}, {1, 1}, {3, 0}, {3, 1}}, l.Slice())
	require.Equal(t, item{3, 1}, third.Value())
	require.True(t, third.Next().Eq(l.End()))
}

func TestReverse(t *testing.T) {
	l := list.NewFromSlice([]int{1, 2, 3, 4})
	first := l.Begin()
	l.Reverse()
	require.Equal(t, []int{4, 3, 2, 1}, l.Slice())
	require.True(t, first.Next().Eq(l.End()))

	e := list.New[int]()
	e.Reverse()
	require.True(t, e.Empty())
}
