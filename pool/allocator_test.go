package pool

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-stl/api"
)

func TestHeapAllocator_Accounting(t *testing.T) {
	a := NewHeapAllocator[string]()
	b, err := a.Allocate(4)
	require.NoError(t, err)
	require.Len(t, b, 4)

	a.Construct(b, 0, "x")
	a.Construct(b, 1, "y")
	a.Destroy(b, 0)
	require.Equal(t, "", b[0])
	a.Destroy(b, 1)
	a.Deallocate(b)

	st := a.Stats()
	assert.Equal(t, int64(1), st.Allocations)
	assert.Equal(t, int64(1), st.Deallocations)
	assert.Equal(t, int64(4), st.SlotsAllocated)
	assert.Equal(t, int64(0), st.SlotsInUse)
	assert.Equal(t, int64(2), st.Constructs)
	assert.Equal(t, int64(2), st.Destroys)
}

func TestHeapAllocator_RejectsBadRequests(t *testing.T) {
	a := NewHeapAllocator[int64]()
	_, err := a.Allocate(-1)
	require.True(t, errors.Is(err, api.ErrInvalidArgument))

	_, err = a.Allocate(a.MaxSize() + 1)
	require.True(t, errors.Is(err, api.ErrLengthExceeded))

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, api.ErrCodeLengthExceeded, apiErr.Code)
	require.Equal(t, a.MaxSize(), apiErr.Context["max"])
}

func TestMaxSlots(t *testing.T) {
	require.Greater(t, maxSlots[byte](), maxSlots[int64]())
	require.Equal(t, maxSlots[struct{}](), maxSlots[[0]int]())
}

func TestClassIndex(t *testing.T) {
	cases := map[int]int{
		0:         -1,
		1:         0,
		8:         0,
		9:         1,
		16:        1,
		17:        2,
		1 << 20:   maxClassShift - minClassShift,
		1<<20 + 1: -1,
	}
	for n, want := range cases {
		assert.Equal(t, want, classIndex(n), "n=%d", n)
	}
}

func TestPooledAllocator_RecyclesBlocks(t *testing.T) {
	a := NewPooledAllocator[int]()
	b, err := a.Allocate(5)
	require.NoError(t, err)
	require.Len(t, b, 5)
	require.Equal(t, 8, cap(b))

	a.Construct(b, 0, 42)
	a.Destroy(b, 0)
	a.Deallocate(b)
	require.Equal(t, int64(1), a.Recycled())
	require.GreaterOrEqual(t, a.Misses(), int64(1))

	// a block of foreign capacity is dropped, not parked
	a.Deallocate(make([]int, 5))
	require.Equal(t, int64(1), a.Recycled())

	big, err := a.Allocate(1<<20 + 1)
	require.NoError(t, err)
	a.Deallocate(big)
	require.Equal(t, int64(1), a.Recycled())

	st := a.Stats()
	require.Equal(t, int64(3), st.Deallocations)
}

func TestPooledAllocator_ReusedBlockIsCleared(t *testing.T) {
	a := NewPooledAllocator[int]()
	for i := 0; i < 10; i++ {
		b, err := a.Allocate(16)
		require.NoError(t, err)
		for j := range b {
			require.Zero(t, b[j])
			a.Construct(b, j, j+1)
		}
		a.Deallocate(b)
	}
}

func TestLimitAllocator_Budget(t *testing.T) {
	a := NewLimitAllocator[int](NewHeapAllocator[int](), 10, 0)
	b1, err := a.Allocate(6)
	require.NoError(t, err)
	require.Equal(t, int64(6), a.InUse())

	_, err = a.Allocate(5)
	require.Error(t, err)
	require.True(t, errors.Is(err, api.ErrAllocationFailed))
	require.Equal(t, int64(6), a.InUse())

	a.Deallocate(b1)
	require.Zero(t, a.InUse())
	_, err = a.Allocate(10)
	require.NoError(t, err)
}

func TestLimitAllocator_BlockCap(t *testing.T) {
	a := NewLimitAllocator[int](NewHeapAllocator[int](), 0, 4)
	require.Equal(t, 4, a.MaxSize())
	_, err := a.Allocate(5)
	require.True(t, errors.Is(err, api.ErrLengthExceeded))
	require.Zero(t, a.InUse())
}

func TestInstrumentedAllocator_Metrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	inner := NewLimitAllocator[int](NewHeapAllocator[int](), 4, 0)
	a := NewInstrumentedAllocator[int](inner, reg, "stl", "test", logger)
	b, err := a.Allocate(3)
	require.NoError(t, err)
	a.Construct(b, 0, 1)
	a.Construct(b, 1, 2)
	a.Destroy(b, 1)

	require.Equal(t, 1.0, testutil.ToFloat64(a.allocations))
	require.Equal(t, 3.0, testutil.ToFloat64(a.liveSlots))
	require.Equal(t, 2.0, testutil.ToFloat64(a.constructs))
	require.Equal(t, 1.0, testutil.ToFloat64(a.destroys))

	_, err = a.Allocate(2)
	require.Error(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(a.failures))
	require.True(t, strings.Contains(buf.String(), "allocation failed"))

	a.Deallocate(b)
	require.Equal(t, 0.0, testutil.ToFloat64(a.liveSlots))
	require.Equal(t, int64(1), a.Stats().Deallocations)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestInstrumentedAllocator_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a1 := NewInstrumentedAllocator[int](NewHeapAllocator[int](), reg, "stl", "shared", nil)
	a2 := NewInstrumentedAllocator[int](NewHeapAllocator[int](), reg, "stl", "shared", nil)
	_, err := a1.Allocate(1)
	require.NoError(t, err)
	_, err = a2.Allocate(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, testutil.ToFloat64(a2.allocations))
	require.Equal(t, "shared", a2.Name())

	// unregistered
	a3 := NewInstrumentedAllocator[int](NewHeapAllocator[int](), nil, "", "free", nil)
	_, err = a3.Allocate(2)
	require.NoError(t, err)
}

func TestNew(t *testing.T) {
	a, err := New[int]("")
	require.NoError(t, err)
	require.IsType(t, &HeapAllocator[int]{}, a)

	a, err = New[int](KindPooled)
	require.NoError(t, err)
	require.IsType(t, &PooledAllocator[int]{}, a)

	_, err = New[int]("mmap")
	require.True(t, errors.Is(err, api.ErrInvalidArgument))
}
