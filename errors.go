// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by Enqueue when a bounded structure has no free slot.
// It wraps [ErrWouldBlock].
//
// Only [RingBuffer] reports ErrFull; Queue and Stack are unbounded.
var ErrFull = fmt.Errorf("lfds: full: %w", ErrWouldBlock)

// ErrEmpty is returned by Dequeue when there is nothing to remove.
// It wraps [ErrWouldBlock].
//
// For [Queue], ErrEmpty may be reported while a producer is between its
// tail exchange and its link store. The consumer should retry:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Dequeue()
//	    if err == nil {
//	        backoff.Reset()
//	        handle(v)
//	        continue
//	    }
//	    backoff.Wait()
//	}
var ErrEmpty = fmt.Errorf("lfds: empty: %w", ErrWouldBlock)

// IsWouldBlock reports whether err indicates the operation would block.
// True for [ErrWouldBlock], [ErrFull] and [ErrEmpty].
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
