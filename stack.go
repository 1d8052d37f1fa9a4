// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfds/internal/arena"
	"golang.org/x/sys/cpu"
)

// Stack is an unbounded multi-producer multi-consumer LIFO stack.
//
// Treiber stack over a type-stable node arena. The head is a tagged
// reference {node index, counter} updated with a 128-bit CAS; the counter
// changes on every successful Push or Pop, so a CAS built from a stale
// observation fails even when the same node index is back on top (ABA).
//
// Popped nodes are recycled through the arena's free list instead of
// being released. Node memory stays valid while the Stack is reachable,
// so a goroutine that read the head just before another goroutine popped
// and recycled that node still dereferences valid memory; its CAS then
// fails on the counter.
//
// Push and Pop are lock-free, not wait-free: a CAS may fail under
// contention and is retried after a short CPU pause.
//
// LIFO order is exact for sequential use. Under concurrency, the popped
// multiset equals the pushed multiset and order follows the CAS history.
//
// A Stack must be created with [NewStack]; the zero value is not usable.
type Stack[T any] struct {
	_     cpu.CacheLinePad
	list  *arena.List[T] // Tagged head
	_     cpu.CacheLinePad
	size  atomix.Int64 // Approximate element count
	_     cpu.CacheLinePad
	nodes *arena.Arena[T]
}

// NewStack creates an empty MPMC stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{list: arena.NewList[T](), nodes: arena.New[T]()}
}

// Push adds v on top of the stack (multiple producers safe).
func (s *Stack[T]) Push(v T) {
	s.push(&v)
}

// Enqueue copies *elem on top of the stack (multiple producers safe).
// Always returns nil.
func (s *Stack[T]) Enqueue(elem *T) error {
	s.push(elem)
	return nil
}

func (s *Stack[T]) push(elem *T) {
	idx := s.nodes.Alloc()
	s.nodes.Node(idx).Value = *elem
	s.list.Push(s.nodes, idx)
	s.size.AddAcqRel(1)
}

// Pop removes the top element into *out (multiple consumers safe).
// Returns false, leaving *out unmodified, if the stack is empty.
func (s *Stack[T]) Pop(out *T) bool {
	idx, ok := s.list.Pop(s.nodes)
	if !ok {
		return false
	}

	*out = s.nodes.Node(idx).Value
	s.nodes.Free(idx)
	s.size.AddAcqRel(-1)
	return true
}

// Dequeue removes and returns the top element (multiple consumers safe).
// Returns (zero-value, ErrEmpty) if the stack is empty.
func (s *Stack[T]) Dequeue() (T, error) {
	var elem T
	if !s.Pop(&elem) {
		return elem, ErrEmpty
	}
	return elem, nil
}

// Empty reports whether the stack had no elements at the instant of the
// head load. Approximate under concurrency.
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}

// Len returns the approximate number of elements.
//
// The counter is updated after the linearizing CAS and is eventually
// consistent: it is exact once all operations have completed, and may lag
// while operations are in flight. Never use it for control decisions.
func (s *Stack[T]) Len() int {
	n := s.size.LoadRelaxed()
	if n < 0 {
		return 0
	}
	return int(n)
}
