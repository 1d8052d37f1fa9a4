// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

// Options configures structure creation and selection.
type Options struct {
	// Producer/Consumer constraints
	singleProducer bool
	singleConsumer bool

	// Removal order
	lifo bool

	// Ring slot count, 0 for unbounded
	capacity int
}

// Builder creates structures with fluent configuration.
//
// The builder selects the structure from the declared constraints:
//
//	lfds.Build[Event](lfds.New().Bounded(1024).SingleProducer().SingleConsumer()) // → RingBuffer
//	lfds.Build[Event](lfds.New().SingleConsumer())                                // → Queue
//	lfds.Build[Event](lfds.New().LIFO())                                          // → Stack
type Builder struct {
	opts Options
}

// New creates an unbounded builder with no constraints.
func New() *Builder {
	return &Builder{}
}

// Bounded requests a fixed number of slots. Only the ring buffer is
// bounded; capacity must be a power of 2 and >= 2 and the usable capacity
// is capacity-1.
//
// Panics if capacity is not a power of 2 or is less than 2.
func (b *Builder) Bounded(capacity int) *Builder {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("lfds: ring capacity must be a power of 2 and >= 2")
	}
	b.opts.capacity = capacity
	return b
}

// SingleProducer declares that only one goroutine will insert.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will remove.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// LIFO requests last-in first-out removal order. The stack supports any
// number of producers and consumers; other constraints are accepted and
// ignored.
func (b *Builder) LIFO() *Builder {
	b.opts.lifo = true
	return b
}

// Build creates a Container[T] with automatic structure selection.
//
// Selection:
//
//	LIFO                                    → Stack
//	SingleProducer + SingleConsumer + Bound → RingBuffer
//	SingleConsumer, unbounded               → Queue
//
// Panics for any other combination: FIFO with multiple consumers and
// bounded FIFO with multiple producers are not provided.
//
// For concrete return types, use BuildRingBuffer, BuildQueue or BuildStack.
func Build[T any](b *Builder) Container[T] {
	switch {
	case b.opts.lifo:
		return NewStack[T]()
	case b.opts.capacity > 0 && b.opts.singleProducer && b.opts.singleConsumer:
		return NewRingBuffer[T](b.opts.capacity)
	case b.opts.capacity == 0 && b.opts.singleConsumer:
		return NewQueue[T]()
	case !b.opts.singleConsumer:
		panic("lfds: FIFO with multiple consumers requires LIFO()")
	default:
		panic("lfds: bounded FIFO requires SingleProducer().SingleConsumer()")
	}
}

// BuildRingBuffer creates a RingBuffer with compile-time type safety.
// Panics if builder is not configured with Bounded(n).SingleProducer().SingleConsumer().
func BuildRingBuffer[T any](b *Builder) *RingBuffer[T] {
	if b.opts.lifo || b.opts.capacity == 0 || !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("lfds: BuildRingBuffer requires Bounded(n).SingleProducer().SingleConsumer()")
	}
	return NewRingBuffer[T](b.opts.capacity)
}

// BuildQueue creates a Queue with compile-time type safety.
// Panics if builder is not configured with SingleConsumer() and no bound.
func BuildQueue[T any](b *Builder) *Queue[T] {
	if b.opts.lifo || b.opts.capacity != 0 || !b.opts.singleConsumer {
		panic("lfds: BuildQueue requires SingleConsumer() without Bounded()")
	}
	return NewQueue[T]()
}

// BuildStack creates a Stack with compile-time type safety.
// Panics if builder is not configured with LIFO().
func BuildStack[T any](b *Builder) *Stack[T] {
	if !b.opts.lifo {
		panic("lfds: BuildStack requires LIFO()")
	}
	return NewStack[T]()
}
