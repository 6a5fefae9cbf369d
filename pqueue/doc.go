// Package pqueue provides an indexed binary min-heap used as the open set
// of grid searches.
//
// What:
//
//   - Heap[T] keeps items in a dense array ordered by a caller-supplied less.
//   - Each item stores its own position in that array (HeapIndex), so
//     Contains is O(1) and UpdateItem is O(log n) without duplicate entries.
//   - Capacity is fixed at construction; the planner sizes it to the grid.
//
// Why:
//
//   - container/heap with lazy decrease-key (see the dijkstra runner this
//     package grew out of) pushes duplicates and needs a visited check on
//     pop. A* on a fixed arena knows every item up front, so in-place
//     re-prioritization is both smaller and faster.
//
// Complexity:
//
//   - Add, RemoveFirst, UpdateItem: O(log n).
//   - Contains, Peek, Len:          O(1).
//
// Errors:
//
//   - ErrCapacityExceeded: Add on a full heap (panics).
//   - ErrEmpty:            RemoveFirst or Peek on an empty heap (panics).
//
// Both are programming errors: the caller checks Len before removing and
// sizes the heap to the number of items that can ever be live.
package pqueue
