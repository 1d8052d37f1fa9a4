// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfds provides non-blocking data structures for passing values
// between goroutines without locks.
//
// The package offers three structures, each with a fixed
// producer/consumer contract:
//
//   - RingBuffer: bounded, Single-Producer Single-Consumer, FIFO
//   - Queue: unbounded, Multi-Producer Single-Consumer, FIFO
//   - Stack: unbounded, Multi-Producer Multi-Consumer, LIFO
//
// # Quick Start
//
// Direct constructors:
//
//	r := lfds.NewRingBuffer[Event](1024) // 1023 usable slots
//	q := lfds.NewQueue[*Request]()
//	s := lfds.NewStack[Buffer]()
//
// Builder API selects the structure from constraints:
//
//	c := lfds.Build[Event](lfds.New().Bounded(1024).SingleProducer().SingleConsumer()) // → RingBuffer
//	c := lfds.Build[Event](lfds.New().SingleConsumer())                                // → Queue
//	c := lfds.Build[Event](lfds.New().LIFO())                                          // → Stack
//
// # Basic Usage
//
// Every structure has two forms of each operation. The boolean form
// leaves the output untouched on failure:
//
//	if !r.Push(ev) {
//	    // full - handle backpressure
//	}
//	var ev Event
//	if r.Pop(&ev) {
//	    process(ev)
//	}
//
// The error form matches [Producer] and [Consumer]:
//
//	err := r.Enqueue(&ev)
//	if lfds.IsWouldBlock(err) {
//	    // full
//	}
//	ev, err := r.Dequeue()
//	if lfds.IsWouldBlock(err) {
//	    // empty
//	}
//
// # Common Patterns
//
// Pipeline Stage (RingBuffer):
//
//	r := lfds.NewRingBuffer[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for !r.Push(data) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    var data Data
//	    for {
//	        if !r.Pop(&data) {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Event Aggregation (Queue):
//
//	q := lfds.NewQueue[Event]()
//
//	for _, s := range sensors {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Push(ev)
//	        }
//	    }(s)
//	}
//
//	go func() { // Single consumer
//	    backoff := iox.Backoff{}
//	    var ev Event
//	    for {
//	        if q.Pop(&ev) {
//	            backoff.Reset()
//	            aggregate(ev)
//	            continue
//	        }
//	        backoff.Wait()
//	    }
//	}()
//
// Free List (Stack):
//
//	free := lfds.NewStack[[]byte]()
//	var buf []byte
//	if !free.Pop(&buf) {
//	    buf = make([]byte, 4096)
//	}
//	free.Push(buf)
//
// # Ordering
//
// RingBuffer delivers in producer order. Queue delivers in the order the
// producers' tail exchanges linearize; a producer between its exchange and
// its link store can make the queue look empty, which delays but never
// reorders. Stack is exactly LIFO for sequential use; under concurrency the
// order follows the head CAS history.
//
// # Error Handling
//
// Operations never block. Enqueue returns [ErrFull] (RingBuffer only) and
// Dequeue returns [ErrEmpty]; both wrap [ErrWouldBlock], which is sourced
// from [code.hybscloud.com/iox]:
//
//	lfds.IsWouldBlock(err)  // true if full/empty
//	lfds.IsSemantic(err)    // true if control flow signal
//	lfds.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Invalid configuration (a ring capacity that is not a power of 2 or is
// less than 2, or a builder constraint no structure satisfies) panics at
// construction.
//
// # Capacity and Length
//
// The ring keeps one slot free to tell full from empty:
//
//	r := lfds.NewRingBuffer[int](8)  // Cap() == 7
//	r := lfds.NewRingBuffer[int](6)  // panics
//
// RingBuffer.Len and Stack.Len are monitoring snapshots. Stack.Len is an
// eventually consistent counter and must not drive control decisions.
// Queue does not report a length.
//
// # Memory Reclamation
//
// Queue nodes are ordinary heap objects reclaimed by the garbage collector
// once the consumer has moved past them.
//
// Stack nodes live in a type-stable arena addressed by indices. Popped
// nodes are recycled through a lock-free free list and their memory is
// never released while the stack is reachable, so a goroutine that loses
// a CAS race never reads reclaimed memory. The head counter prevents a
// stale observation from matching a recycled node (ABA).
//
// # Thread Safety
//
//   - RingBuffer: one producer goroutine, one consumer goroutine
//   - Queue: multiple producer goroutines, one consumer goroutine
//   - Stack: multiple producer and consumer goroutines
//
// Violating these constraints causes undefined behavior including data
// corruption. Monitoring queries (Empty, Full, Len) may be called from any
// goroutine except Queue.Empty, which belongs to the consumer.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix acquire-release orderings on separate
// variables. Concurrent tests are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// and [golang.org/x/sys/cpu] for cache line padding.
package lfds
