// Package pq provides a min-priority queue whose order comes from an
// explicit key-extraction function instead of an inverted comparator.
//
// The smallest key is served first. Items with equal keys are ordered by
// an optional tie function; without one their relative order is whatever
// the heap happens to produce.
package pq

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Queue is a binary min-heap of T ordered by key(T), then by tie.
// The zero value is not usable; create queues with New.
// A Queue is not safe for concurrent use.
type Queue[T any, K constraints.Ordered] struct {
	h *itemHeap[T, K]
}

// New returns an empty queue.
//
// key extracts the priority of an item; it is called once per Push and the
// result is cached. tie, if non-nil, must be a strict weak order used only
// between items whose keys are equal.
func New[T any, K constraints.Ordered](key func(T) K, tie func(a, b T) bool) *Queue[T, K] {
	return &Queue[T, K]{h: &itemHeap[T, K]{key: key, tie: tie}}
}

// Init replaces the contents of q with items and heapifies them in O(n).
// The slice is not retained.
func (q *Queue[T, K]) Init(items []T) {
	q.h.entries = make([]entry[T, K], len(items))
	for i, it := range items {
		q.h.entries[i] = entry[T, K]{item: it, key: q.h.key(it)}
	}
	heap.Init(q.h)
}

// Push adds x. Complexity: O(log n).
func (q *Queue[T, K]) Push(x T) {
	heap.Push(q.h, entry[T, K]{item: x, key: q.h.key(x)})
}

// Pop removes and returns the minimum item, or the zero value and false
// when the queue is empty. Complexity: O(log n).
func (q *Queue[T, K]) Pop() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(q.h).(entry[T, K]).item, true
}

// Peek returns the minimum item without removing it. Complexity: O(1).
func (q *Queue[T, K]) Peek() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}

	return q.h.entries[0].item, true
}

// Len returns the number of queued items.
func (q *Queue[T, K]) Len() int { return q.h.Len() }

type entry[T any, K constraints.Ordered] struct {
	item T
	key  K
}

// itemHeap implements heap.Interface over cached keys.
type itemHeap[T any, K constraints.Ordered] struct {
	entries []entry[T, K]
	key     func(T) K
	tie     func(a, b T) bool
}

func (h *itemHeap[T, K]) Len() int { return len(h.entries) }

func (h *itemHeap[T, K]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if h.tie == nil {
		return false
	}

	return h.tie(a.item, b.item)
}

func (h *itemHeap[T, K]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *itemHeap[T, K]) Push(x any) { h.entries = append(h.entries, x.(entry[T, K])) }

func (h *itemHeap[T, K]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T, K]{} // drop the reference held by the backing array
	h.entries = old[:n-1]

	return e
}
