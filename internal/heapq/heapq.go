// Package heapq provides the priority queue behind the shortest-path
// searches: a binary min-heap over any element type, ordered by a
// caller-supplied comparison.
package heapq

import "container/heap"

// Heap yields its elements smallest first. The zero value is not
// usable; construct one with New.
type Heap[E any] struct {
	q queue[E]
}

// New returns an empty Heap in which a sorts before b when less(a, b).
func New[E any](less func(a, b E) bool) *Heap[E] {
	return &Heap[E]{q: queue[E]{less: less}}
}

func (h *Heap[E]) Push(e E) { heap.Push(&h.q, e) }

// Pop takes the smallest element out of the heap.
// Calling it on an empty heap panics.
func (h *Heap[E]) Pop() E { return heap.Pop(&h.q).(E) }

// Peek returns the element Pop would return, leaving it in place.
func (h *Heap[E]) Peek() E { return h.q.items[0] }

func (h *Heap[E]) Len() int { return len(h.q.items) }

// queue adapts a slice and comparison to heap.Interface.
type queue[E any] struct {
	items []E
	less  func(a, b E) bool
}

func (q *queue[E]) Len() int           { return len(q.items) }
func (q *queue[E]) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }
func (q *queue[E]) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *queue[E]) Push(x any)         { q.items = append(q.items, x.(E)) }

func (q *queue[E]) Pop() any {
	last := len(q.items) - 1
	e := q.items[last]
	var zero E
	q.items[last] = zero
	q.items = q.items[:last]
	return e
}
