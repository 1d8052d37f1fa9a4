// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// RingBuffer is a single-producer single-consumer bounded ring buffer.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's head index, and vice versa,
// reducing cross-core cache line traffic.
//
// Indices are kept in [0, capacity). One slot is always left unused so
// that head == tail means empty and (tail+1)&mask == head means full;
// the usable capacity is capacity-1.
//
// Push and Pop are wait-free: only the producer writes tail and only the
// consumer writes head, so neither operation ever retries.
//
// Memory: O(capacity), no allocation per operation
type RingBuffer[T any] struct {
	_          cpu.CacheLinePad
	head       atomix.Uint64 // Consumer reads from here
	_          cpu.CacheLinePad
	cachedTail uint64 // Consumer's cached view of tail
	_          cpu.CacheLinePad
	tail       atomix.Uint64 // Producer writes here
	_          cpu.CacheLinePad
	cachedHead uint64 // Producer's cached view of head
	_          cpu.CacheLinePad
	buffer     []T
	mask       uint64
}

// NewRingBuffer creates a new SPSC ring buffer with the given number of
// slots. Cap reports capacity-1.
//
// Panics if capacity is not a power of 2 or is less than 2.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("lfds: ring capacity must be a power of 2 and >= 2")
	}

	n := uint64(capacity)
	return &RingBuffer[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Push adds v to the buffer (producer only).
// Returns false, leaving the buffer untouched, if it is full.
func (q *RingBuffer[T]) Push(v T) bool {
	return q.Enqueue(&v) == nil
}

// Enqueue copies *elem into the buffer (producer only).
// Returns ErrFull if the buffer is full.
func (q *RingBuffer[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	next := (tail + 1) & q.mask
	if next == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if next == q.cachedHead {
			return ErrFull
		}
	}

	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Pop removes the oldest element into *out (consumer only).
// Returns false, leaving *out unmodified, if the buffer is empty.
func (q *RingBuffer[T]) Pop(out *T) bool {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return false
		}
	}

	*out = q.buffer[head]
	var zero T
	q.buffer[head] = zero
	q.head.StoreRelease((head + 1) & q.mask)
	return true
}

// Dequeue removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrEmpty) if the buffer is empty.
func (q *RingBuffer[T]) Dequeue() (T, error) {
	var elem T
	if !q.Pop(&elem) {
		return elem, ErrEmpty
	}
	return elem, nil
}

// Empty reports whether the buffer holds no elements.
// The result is a snapshot for monitoring and may be stale on return.
func (q *RingBuffer[T]) Empty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Full reports whether the buffer has no free slot.
// The result is a snapshot for monitoring and may be stale on return.
func (q *RingBuffer[T]) Full() bool {
	tail := q.tail.LoadAcquire()
	return (tail+1)&q.mask == q.head.LoadAcquire()
}

// Len returns the number of buffered elements.
// The result is a snapshot for monitoring and may be stale on return.
func (q *RingBuffer[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	return int((tail - head) & q.mask)
}

// Cap returns the usable capacity, one less than the slot count.
func (q *RingBuffer[T]) Cap() int {
	return int(q.mask)
}
