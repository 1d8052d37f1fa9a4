// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfds"
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

var sinkInt int

// =============================================================================
// Single Goroutine
// =============================================================================

func BenchmarkRingBufferPushPop(b *testing.B) {
	r := lfds.NewRingBuffer[int](1024)
	var v int
	b.ResetTimer()
	for i := range b.N {
		r.Push(i)
		r.Pop(&v)
	}
	sinkInt = v
}

func BenchmarkQueuePushPop(b *testing.B) {
	q := lfds.NewQueue[int]()
	var v int
	b.ResetTimer()
	for i := range b.N {
		q.Push(i)
		q.Pop(&v)
	}
	sinkInt = v
}

func BenchmarkStackPushPop(b *testing.B) {
	s := lfds.NewStack[int]()
	var v int
	b.ResetTimer()
	for i := range b.N {
		s.Push(i)
		s.Pop(&v)
	}
	sinkInt = v
}

// =============================================================================
// SPSC: 1 Producer → 1 Consumer
// =============================================================================

func BenchmarkRingBufferSPSC(b *testing.B) {
	r := lfds.NewRingBuffer[int](1024)
	done := make(chan struct{})

	go func() {
		var v int
		for {
			select {
			case <-done:
				return
			default:
				r.Pop(&v)
			}
		}
	}()

	b.ResetTimer()
	for i := range b.N {
		for !r.Push(i) {
		}
	}
	b.StopTimer()
	close(done)
}

// BenchmarkShardedRingSPSC is go-lock-free-ring with 1 shard, for comparison.
func BenchmarkShardedRingSPSC(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
}

// =============================================================================
// MPSC / MPMC: N Producers
// =============================================================================

func BenchmarkQueueMPSC(b *testing.B) {
	if lfds.RaceEnabled {
		b.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	q := lfds.NewQueue[int]()
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		backoff := iox.Backoff{}
		var v int
		for {
			select {
			case <-done:
				return
			default:
				if q.Pop(&v) {
					backoff.Reset()
				} else {
					backoff.Wait()
				}
			}
		}
	}()

	b.SetParallelism(4)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Push(i)
			i++
		}
	})
	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkStackMPMC(b *testing.B) {
	if lfds.RaceEnabled {
		b.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	s := lfds.NewStack[int]()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var v int
		i := 0
		for pb.Next() {
			s.Push(i)
			s.Pop(&v)
			i++
		}
	})
}
