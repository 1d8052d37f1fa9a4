// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

// Container is the combined producer-consumer interface shared by
// [RingBuffer], [Queue] and [Stack].
//
// Container provides non-blocking Enqueue and Dequeue operations. Enqueue
// returns [ErrFull] and Dequeue returns [ErrEmpty] when they cannot
// proceed; both wrap [ErrWouldBlock].
//
// Removal order depends on the implementation: FIFO for RingBuffer and
// Queue, LIFO for Stack.
//
// Example:
//
//	var c lfds.Container[int] = lfds.NewQueue[int]()
//
//	v := 42
//	c.Enqueue(&v)
//
//	elem, err := c.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Container[T any] interface {
	Producer[T]
	Consumer[T]
	Empty() bool
}

// Producer is the interface for inserting elements.
//
// The element is passed by pointer to avoid copying large structs at the
// call site. The structure stores a copy of the pointed-to value, so the
// original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element (non-blocking).
	// Returns nil on success, ErrFull if a bounded structure is full.
	//
	// Thread safety depends on the structure:
	//   - RingBuffer: single producer only
	//   - Queue, Stack: multiple producers safe
	Enqueue(elem *T) error
}

// Consumer is the interface for removing elements.
//
// The element is returned by value. The internal slot or node is cleared
// to allow garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element (non-blocking).
	// Returns (zero-value, ErrEmpty) if there is nothing to remove.
	//
	// Thread safety depends on the structure:
	//   - RingBuffer, Queue: single consumer only
	//   - Stack: multiple consumers safe
	Dequeue() (T, error)
}
