// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

// HeadAligned reports whether the stack's tagged head is 16-byte aligned.
func (s *Stack[T]) HeadAligned() bool {
	return s.list.Aligned()
}

// ArenaAligned reports whether the node arena's free list head is 16-byte
// aligned. Alloc goes through the free list first, so a misaligned head
// faults on the first Push.
func (s *Stack[T]) ArenaAligned() bool {
	return s.nodes.FreeListAligned()
}

// NodesAllocated reports how many distinct nodes the stack's arena has
// created.
func (s *Stack[T]) NodesAllocated() int {
	return s.nodes.Allocated()
}
