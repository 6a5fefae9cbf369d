package pqueue

import "container/heap"

// Heap is a fixed-capacity binary min-heap over items that track their own
// position. It is not safe for concurrent use.
type Heap[T Item] struct {
	items store[T]
}

// New returns an empty heap that can hold up to capacity items ordered by less.
// Panics if less is nil or capacity is negative.
func New[T Item](capacity int, less LessFunc[T]) *Heap[T] {
	if less == nil {
		panic("pqueue: nil less function")
	}
	if capacity < 0 {
		panic("pqueue: negative capacity")
	}

	return &Heap[T]{
		items: store[T]{
			data: make([]T, 0, capacity),
			less: less,
		},
	}
}

// Add inserts item and sifts it up to its place.
// Panics with ErrCapacityExceeded when the heap is full.
func (h *Heap[T]) Add(item T) {
	if len(h.items.data) == cap(h.items.data) {
		panic(ErrCapacityExceeded)
	}
	heap.Push(&h.items, item)
}

// RemoveFirst removes and returns the minimum item.
// Panics with ErrEmpty when the heap holds nothing; check Len first.
func (h *Heap[T]) RemoveFirst() T {
	if len(h.items.data) == 0 {
		panic(ErrEmpty)
	}

	return heap.Pop(&h.items).(T)
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() T {
	if len(h.items.data) == 0 {
		panic(ErrEmpty)
	}

	return h.items.data[0]
}

// Contains reports whether item is currently held. The lookup goes through
// the item's stored index, so a stale index left over from an earlier
// removal never produces a false positive.
func (h *Heap[T]) Contains(item T) bool {
	i := item.HeapIndex()

	return i >= 0 && i < len(h.items.data) && h.items.data[i] == item
}

// UpdateItem restores heap order after a contained item's key decreased.
// Keys only ever improve during a search, so the item is sifted up only.
// Calling it for an item that is not held is a no-op.
func (h *Heap[T]) UpdateItem(item T) {
	if !h.Contains(item) {
		return
	}
	h.items.up(item.HeapIndex())
}

// Len returns the number of held items.
func (h *Heap[T]) Len() int { return len(h.items.data) }

// Cap returns the fixed capacity.
func (h *Heap[T]) Cap() int { return cap(h.items.data) }

// Clear drops every item, marking each as no longer held.
func (h *Heap[T]) Clear() {
	for i, it := range h.items.data {
		it.SetHeapIndex(-1)
		var zero T
		h.items.data[i] = zero
	}
	h.items.data = h.items.data[:0]
}

// store adapts the item slice to container/heap. Swap keeps every moved
// item's index in sync, which is what Contains and UpdateItem rely on.
type store[T Item] struct {
	data []T
	less LessFunc[T]
}

func (s store[T]) Len() int           { return len(s.data) }
func (s store[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }

func (s store[T]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.data[i].SetHeapIndex(i)
	s.data[j].SetHeapIndex(j)
}

func (s *store[T]) Push(x any) {
	item := x.(T)
	item.SetHeapIndex(len(s.data))
	s.data = append(s.data, item)
}

func (s *store[T]) Pop() any {
	old := s.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	s.data = old[:n-1]
	item.SetHeapIndex(-1)

	return item
}

// up sifts the element at j towards the root.
func (s store[T]) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if !s.Less(j, parent) {
			break
		}
		s.Swap(parent, j)
		j = parent
	}
}
