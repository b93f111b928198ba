package ordmap_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-stl/algo"
	"github.com/momentics/hioload-stl/api"
	"github.com/momentics/hioload-stl/ordmap"
)

func TestMap_InsertGetAt(t *testing.T) {
	m := ordmap.New[string, int]()
	it, ok := m.Insert("b", 2)
	require.True(t, ok)
	require.Equal(t, "b", it.Key())

	it, ok = m.Insert("b", 20)
	require.False(t, ok)
	require.Equal(t, 2, it.Value().Value)

	m.Set("b", 22)
	m.Set("a", 1)
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 22, v)

	_, err := m.At("zz")
	require.True(t, errors.Is(err, api.ErrNotFound))
	v, err = m.At("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	*m.Index("c") += 3
	*m.Index("c") += 3
	require.Equal(t, 6, *m.Index("c"))
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Equal(t, 3, m.Len())
}

func TestMap_EraseAndCount(t *testing.T) {
	m := ordmap.New[int, string]()
	for _, k := range []int{5, 1, 3} {
		m.Set(k, "v")
	}
	require.Equal(t, 1, m.Count(3))
	require.Equal(t, 1, m.Erase(3))
	require.Equal(t, 0, m.Erase(3))
	require.Equal(t, 0, m.Count(3))

	next := m.EraseAt(m.Begin())
	require.Equal(t, 5, next.Key())
	require.Equal(t, []int{5}, m.Keys())

	m.Clear()
	require.True(t, m.Empty())
	require.True(t, m.Begin().Eq(m.End()))
}

func TestMap_Bounds(t *testing.T) {
	m := ordmap.New[int, int]()
	for _, k := range []int{10, 20, 30} {
		m.Set(k, k*k)
	}
	assert.Equal(t, 20, m.LowerBound(20).Key())
	assert.Equal(t, 30, m.UpperBound(20).Key())
	assert.Equal(t, 10, m.LowerBound(5).Key())
	assert.Equal(t, 20, m.UpperBound(15).Key())
	assert.True(t, m.UpperBound(30).Eq(m.End()))
	assert.True(t, m.LowerBound(31).Eq(m.End()))
	assert.True(t, m.Find(15).Eq(m.End()))
	assert.Equal(t, 400, m.Find(20).Value().Value)
}

func TestMap_IterationOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := ordmap.New[int, int]()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		k := rng.Intn(300)
		m.Set(k, i)
		seen[k] = true
	}
	want := make([]int, 0, len(seen))
	for k := range seen {
		want = append(want, k)
	}
	sort.Ints(want)

	var fwd []int
	for it := m.Begin(); it.Ne(m.End()); it = it.Next() {
		fwd = append(fwd, it.Key())
	}
	require.Empty(t, cmp.Diff(want, fwd))

	var back []int
	for it := m.End(); it.Ne(m.Begin()); {
		it = it.Prev()
		back = append(back, it.Key())
	}
	require.Len(t, back, len(want))
	for i := range back {
		require.Equal(t, want[len(want)-1-i], back[i])
	}
	require.Equal(t, len(want), algo.Distance[ordmap.Pair[int, int]](m.Begin(), m.End()))
}

func TestMap_IteratorPtrUpdatesValue(t *testing.T) {
	m := ordmap.New[string, int]()
	m.Set("x", 1)
	m.Begin().Ptr().Value = 9
	v, _ := m.Get("x")
	require.Equal(t, 9, v)
}

func TestMap_CustomOrderCloneSwap(t *testing.T) {
	m := ordmap.NewFunc[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	m.Set("b", 1)
	m.Set("A", 2)
	_, inserted := m.Insert("a", 3)
	require.False(t, inserted)
	require.Equal(t, []string{"A", "b"}, m.Keys())

	c := m.Clone()
	c.Set("A", 100)
	v, _ := m.Get("a")
	require.Equal(t, 2, v)

	other := ordmap.New[string, int]()
	other.Set("z", 26)
	first := m.Begin()
	m.Swap(other)
	require.Equal(t, []string{"z"}, m.Keys())
	require.Equal(t, []string{"A", "b"}, other.Keys())
	require.True(t, first.Eq(other.Begin()))
	require.True(t, first.Next().Next().Eq(other.End()))
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := ordmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	n := 0
	for k := range m.All() {
		if k == 3 {
			break
		}
		n++
	}
	require.Equal(t, 3, n)
}

func TestMap_ReverseIteration(t *testing.T) {
	m := ordmap.New[int, string]()
	require.True(t, m.RBegin().Eq(m.REnd()))

	for _, k := range []int{20, 5, 40, 10} {
		m.Set(k, "v")
	}
	var keys []int
	for it := m.RBegin(); it.Ne(m.REnd()); it = it.Next() {
		keys = append(keys, it.Key())
	}
	require.Empty(t, cmp.Diff([]int{40, 20, 10, 5}, keys))

	r := m.RBegin()
	require.Equal(t, 40, r.Value().Key)
	require.True(t, r.Base().Eq(m.End()))
	r.Ptr().Value = "top"
	v, _ := m.Get(40)
	require.Equal(t, "top", v)

	last := m.REnd().Prev()
	require.Equal(t, 5, last.Key())
	require.False(t, last.Prev().Eq(m.REnd()))
	require.Equal(t, 10, last.Prev().Key())

	var back []int
	for k := range m.Backward() {
		back = append(back, k)
	}
	require.Equal(t, keys, back)
}
