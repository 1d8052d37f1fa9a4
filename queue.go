// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Queue is an unbounded multi-producer single-consumer FIFO queue.
//
// Based on Vyukov's intrusive MPSC node queue. The list always starts with
// a sentinel node; the element to read next lives in the node after it.
//
// Producers publish in two steps: they exchange the shared tail for their
// new node, then link the previous tail to it. The exchange is the
// linearization point and fixes arrival order. Until the link store
// completes the new node is unreachable from head, so the consumer may
// see the queue empty while a push is in flight. Such a push is delayed,
// never reordered or lost; the consumer must treat an empty result as
// "retry later", not as end of stream.
//
// Enqueue is wait-free (one exchange, one store). Dequeue is wait-free and
// uses no CAS because only one goroutine ever calls it.
//
// Memory: one heap node per element; a node is dropped once the consumer
// has moved past it and reclaimed by the garbage collector.
type Queue[T any] struct {
	_    cpu.CacheLinePad
	head *queueNode[T] // Sentinel, consumer only
	_    cpu.CacheLinePad
	tail atomic.Pointer[queueNode[T]] // Last linked node, all producers
	_    cpu.CacheLinePad
}

type queueNode[T any] struct {
	next  atomic.Pointer[queueNode[T]]
	value T
}

// NewQueue creates an empty MPSC queue.
func NewQueue[T any]() *Queue[T] {
	sentinel := &queueNode[T]{}
	q := &Queue[T]{head: sentinel}
	q.tail.Store(sentinel)
	return q
}

// Push adds v to the queue (multiple producers safe).
// Always returns true; the queue is bounded only by memory.
func (q *Queue[T]) Push(v T) bool {
	q.push(&queueNode[T]{value: v})
	return true
}

// Enqueue copies *elem into the queue (multiple producers safe).
// Always returns nil.
func (q *Queue[T]) Enqueue(elem *T) error {
	q.push(&queueNode[T]{value: *elem})
	return nil
}

func (q *Queue[T]) push(n *queueNode[T]) {
	prev := q.tail.Swap(n)
	prev.next.Store(n)
}

// Pop removes the oldest element into *out (single consumer only).
// Returns false, leaving *out unmodified, if no element is reachable.
func (q *Queue[T]) Pop(out *T) bool {
	next := q.head.next.Load()
	if next == nil {
		return false
	}

	*out = next.value
	var zero T
	next.value = zero
	q.head = next
	return true
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrEmpty) if no element is reachable.
func (q *Queue[T]) Dequeue() (T, error) {
	var elem T
	if !q.Pop(&elem) {
		return elem, ErrEmpty
	}
	return elem, nil
}

// Empty reports whether no element is reachable from the consumer side.
// Only safe to call from the consumer goroutine.
func (q *Queue[T]) Empty() bool {
	return q.head.next.Load() == nil
}
