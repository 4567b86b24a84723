package navigation

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func TestBinaryHeap_Empty(t *testing.T) {
	h := NewBinaryHeap(intLess, 0)

	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())

	v, ok := h.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	v, ok = h.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestBinaryHeap_PushPopOrder(t *testing.T) {
	h := NewBinaryHeap(intLess, 4)
	for _, v := range []int{5, 3, 8, 1, 9, 1, 4} {
		h.Push(v)
	}
	require.Equal(t, 7, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
	assert.Equal(t, 7, h.Len(), "peek must not remove")

	var got []int
	for !h.IsEmpty() {
		v, ok := h.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 3, 4, 5, 8, 9}, got)
}

func TestBinaryHeap_ClearKeepsWorking(t *testing.T) {
	h := NewBinaryHeap(intLess, 2)
	h.Push(3)
	h.Push(2)
	h.Clear()

	assert.True(t, h.IsEmpty())
	_, ok := h.Pop()
	assert.False(t, ok)

	h.Push(7)
	v, ok := h.Pop()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestBinaryHeap_CustomComparator(t *testing.T) {
	// Max-heap through the injected comparator
	h := NewBinaryHeap(func(a, b int) bool { return a > b }, 0)
	for _, v := range []int{2, 7, 4} {
		h.Push(v)
	}
	v, _ := h.Pop()
	assert.Equal(t, 7, v)
	v, _ = h.Pop()
	assert.Equal(t, 4, v)
}

// Duplicate entries for the same key are kept; the caller filters stale ones on pop
func TestBinaryHeap_LazyDeletionDuplicates(t *testing.T) {
	h := NewBinaryHeap(heapEntryLess, 0)
	best := map[int]uint32{7: 9}

	h.Push(heapEntry{idx: 7, dist: 9})
	best[7] = 3
	h.Push(heapEntry{idx: 7, dist: 3})
	assert.Equal(t, 2, h.Len())

	var live []heapEntry
	for !h.IsEmpty() {
		e, _ := h.Pop()
		if e.dist > best[e.idx] {
			continue
		}
		live = append(live, e)
	}
	assert.Equal(t, []heapEntry{{idx: 7, dist: 3}}, live)
}

func TestBinaryHeap_PopOrderProperty(t *testing.T) {
	property := func(values []int16) bool {
		h := NewBinaryHeap(func(a, b int16) bool { return a < b }, 0)
		for _, v := range values {
			h.Push(v)
		}
		if h.Len() != len(values) {
			return false
		}

		var prev int16
		for i := range values {
			v, ok := h.Pop()
			if !ok {
				return false
			}
			if i > 0 && v < prev {
				return false
			}
			prev = v
		}
		_, ok := h.Pop()
		return !ok
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 500}))
}
