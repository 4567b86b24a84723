package navigation

// BinaryHeap is a slice-backed min-priority queue ordered by an injected comparator
//
// There is no decrease-key. A caller that improves the priority of a queued item pushes a
// second entry for it; the heap then holds duplicates, and the caller discards any popped
// entry whose recorded priority no longer matches its authoritative value (lazy deletion)
type BinaryHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewBinaryHeap creates an empty heap; less reports whether a must be popped before b
func NewBinaryHeap[T any](less func(a, b T) bool, capacity int) *BinaryHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &BinaryHeap[T]{
		items: make([]T, 0, capacity),
		less:  less,
	}
}

// Push appends item and sifts it toward the root, O(log n)
func (h *BinaryHeap[T]) Push(item T) {
	h.items = append(h.items, item)

	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// Pop removes and returns the minimum item, false if the heap is empty
func (h *BinaryHeap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}

	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]

	// Sift down
	i := 0
	size := len(h.items)
	for {
		left := 2*i + 1
		if left >= size {
			break
		}
		smallest := left
		if right := left + 1; right < size && h.less(h.items[right], h.items[left]) {
			smallest = right
		}
		if !h.less(h.items[smallest], h.items[i]) {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
	return top, true
}

// Peek returns the minimum item without removing it, false if the heap is empty
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of queued items, stale duplicates included
func (h *BinaryHeap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no items
func (h *BinaryHeap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Clear drops all items and keeps the backing array for reuse
func (h *BinaryHeap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}
