package pqueue

import "errors"

// Sentinel errors used as panic values for precondition violations.
var (
	// ErrCapacityExceeded indicates Add was called on a full heap.
	ErrCapacityExceeded = errors.New("pqueue: capacity exceeded")

	// ErrEmpty indicates RemoveFirst or Peek was called on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")
)

// Item is anything the heap can hold. Identity is the comparable value
// itself (usually a pointer), and the heap owns the stored index.
type Item interface {
	comparable
	HeapIndex() int
	SetHeapIndex(i int)
}

// LessFunc reports whether a must be removed before b.
type LessFunc[T any] func(a, b T) bool
