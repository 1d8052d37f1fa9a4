// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arena provides type-stable node storage for linked lock-free
// structures.
//
// Nodes are addressed by 64-bit indices instead of pointers. Index 0 is
// the nil index. Node memory is allocated in chunks that are never
// released while the arena is reachable, so a goroutine holding a stale
// index can always dereference it safely: it may observe a recycled
// node, but never freed memory. Combined with the tagged head of [List],
// this gives deferred reclamation without hazard pointers or epochs.
package arena

import (
	"math/bits"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

const (
	// chunkShift is log2 of the first chunk's node count.
	chunkShift = 6
	// maxChunks bounds the chunk directory. Chunk k holds 64<<k nodes,
	// so the directory covers more than 2^50 nodes.
	maxChunks = 45
)

// Node is a linked node stored in an [Arena].
type Node[T any] struct {
	next  atomix.Uint64 // index of the next node, 0 for nil
	Value T
}

// Next returns the index linked after n.
func (n *Node[T]) Next() uint64 {
	return n.next.LoadAcquire()
}

// Arena is an unbounded pool of nodes with a lock-free free list.
//
// Alloc and Free are safe for concurrent use by any number of goroutines.
// An Arena must be created with [New].
type Arena[T any] struct {
	free   *List[T] // recycled nodes
	_      cpu.CacheLinePad
	bump   atomix.Uint64 // last index handed out by bump allocation
	_      cpu.CacheLinePad
	chunks [maxChunks]atomic.Pointer[[]Node[T]]
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{free: NewList[T]()}
}

// Alloc returns the index of an unused node.
// The node's link is unspecified and its Value is the zero value.
func (a *Arena[T]) Alloc() uint64 {
	if idx, ok := a.free.Pop(a); ok {
		return idx
	}
	idx := a.bump.AddAcqRel(1)
	k, _ := locate(idx)
	if k >= maxChunks {
		panic("arena: node index space exhausted")
	}
	if a.chunks[k].Load() == nil {
		c := make([]Node[T], 1<<(k+chunkShift))
		a.chunks[k].CompareAndSwap(nil, &c)
	}
	return idx
}

// Free clears the node's value and returns it to the free list.
// The caller must own idx: it was returned by Alloc or unlinked by a
// successful [List.Pop], and no other goroutine will use it as its own.
func (a *Arena[T]) Free(idx uint64) {
	var zero T
	a.Node(idx).Value = zero
	a.free.Push(a, idx)
}

// Node returns the node stored at idx. The address is stable for the
// lifetime of the arena.
func (a *Arena[T]) Node(idx uint64) *Node[T] {
	k, off := locate(idx)
	return &(*a.chunks[k].Load())[off]
}

// Allocated reports how many distinct nodes the arena has created.
func (a *Arena[T]) Allocated() int {
	return int(a.bump.LoadAcquire())
}

// FreeListAligned reports whether the free list head meets the alignment
// required by 128-bit atomics.
func (a *Arena[T]) FreeListAligned() bool {
	return a.free.Aligned()
}

// locate maps a 1-based index to its chunk and offset.
func locate(idx uint64) (chunk int, off uint64) {
	i := idx - 1 + 1<<chunkShift
	k := bits.Len64(i) - 1 - chunkShift
	return k, i - 1<<(k+chunkShift)
}
