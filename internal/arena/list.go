// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// List is a lock-free LIFO list of arena nodes (Treiber stack).
//
// The head is a tagged reference packed into one 128-bit word:
// lo holds the top node index, hi holds a counter that is incremented on
// every successful Push or Pop. Two observations with the same index but
// different counters describe different states, so a CAS based on a
// stale observation fails even if the index has been recycled (ABA).
//
// 128-bit atomics require a 16-byte aligned word, which a struct field
// cannot guarantee. The head is placed on its own cache line inside a
// private buffer, so a List must be created with [NewList].
type List[T any] struct {
	head *atomix.Uint128Padded // lo=index, hi=counter
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	buf := make([]byte, 2*atomix.CacheLineSize)
	_, head := atomix.PlaceCacheAlignedUint128(buf, 0)
	return &List[T]{head: head}
}

// Push links idx on top of the list. The caller must own idx.
func (l *List[T]) Push(a *Arena[T], idx uint64) {
	n := a.Node(idx)
	sw := spin.Wait{}
	for {
		top, tag := l.head.LoadAcquire()
		n.next.StoreRelaxed(top)
		if l.head.CompareAndSwapAcqRel(top, tag, idx, tag+1) {
			return
		}
		sw.Once()
	}
}

// Pop unlinks the top node and returns its index.
// Returns (0, false) if the list is empty.
//
// The winner of the CAS becomes the sole owner of the returned node.
// Losers may have read the link of a node that was concurrently popped
// and recycled; the arena keeps that memory valid and the counter makes
// their CAS fail.
func (l *List[T]) Pop(a *Arena[T]) (uint64, bool) {
	sw := spin.Wait{}
	for {
		top, tag := l.head.LoadAcquire()
		if top == 0 {
			return 0, false
		}
		next := a.Node(top).next.LoadAcquire()
		if l.head.CompareAndSwapAcqRel(top, tag, next, tag+1) {
			return top, true
		}
		sw.Once()
	}
}

// Top returns the current head index and counter.
func (l *List[T]) Top() (idx, tag uint64) {
	return l.head.LoadAcquire()
}

// Empty reports whether the list has no nodes at the instant of the load.
func (l *List[T]) Empty() bool {
	top, _ := l.head.LoadAcquire()
	return top == 0
}

// Aligned reports whether the head word meets the 16-byte alignment
// required by 128-bit atomics.
func (l *List[T]) Aligned() bool {
	return uintptr(unsafe.Pointer(&l.head.Uint128))%16 == 0
}
