package frontier

import "container/heap"

// LessFunc reports whether a must be popped before b.
type LessFunc[T any] func(a, b T) bool

// PriorityQueue is a min-heap over T.
type PriorityQueue[T any] struct {
	h *entries[T]
}

// NewPriorityQueue creates an empty queue ordered by less.
func NewPriorityQueue[T any](less LessFunc[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &entries[T]{less: less}}
}

// Push inserts an item.
func (pq *PriorityQueue[T]) Push(item T) {
	heap.Push(pq.h, item)
}

// Pop removes and returns the minimum item. ok is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (item T, ok bool) {
	if pq.h.Len() == 0 {
		return item, false
	}
	return heap.Pop(pq.h).(T), true
}

// Peek returns the minimum item without removing it.
func (pq *PriorityQueue[T]) Peek() (item T, ok bool) {
	if pq.h.Len() == 0 {
		return item, false
	}
	return pq.h.items[0], true
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

// entries implements heap.Interface.
type entries[T any] struct {
	items []T
	less  LessFunc[T]
}

func (e *entries[T]) Len() int           { return len(e.items) }
func (e *entries[T]) Less(i, j int) bool { return e.less(e.items[i], e.items[j]) }
func (e *entries[T]) Swap(i, j int)      { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries[T]) Push(x any) {
	e.items = append(e.items, x.(T))
}

func (e *entries[T]) Pop() any {
	old := e.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // avoid memory leak
	e.items = old[:n-1]
	return item
}
