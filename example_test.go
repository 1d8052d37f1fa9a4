// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfds_test

import (
	"fmt"

	"code.hybscloud.com/lfds"
)

// ExampleNewRingBuffer demonstrates a bounded SPSC ring.
func ExampleNewRingBuffer() {
	// 8 slots, one kept free to tell full from empty
	r := lfds.NewRingBuffer[int](8)
	fmt.Println("capacity:", r.Cap())

	for i := range 8 {
		if !r.Push(i * 10) {
			fmt.Println("full at", i)
		}
	}

	var v int
	for r.Pop(&v) {
		fmt.Println(v)
	}

	// Output:
	// capacity: 7
	// full at 7
	// 0
	// 10
	// 20
	// 30
	// 40
	// 50
	// 60
}

// ExampleNewQueue demonstrates the MPSC queue from a single goroutine.
func ExampleNewQueue() {
	q := lfds.NewQueue[string]()

	q.Push("first")
	q.Push("second")
	q.Push("third")

	for !q.Empty() {
		s, _ := q.Dequeue()
		fmt.Println(s)
	}

	// Output:
	// first
	// second
	// third
}

// ExampleNewStack demonstrates LIFO order.
func ExampleNewStack() {
	s := lfds.NewStack[int]()

	s.Push(1)
	s.Push(2)
	s.Push(3)
	fmt.Println("len:", s.Len())

	var v int
	for s.Pop(&v) {
		fmt.Println(v)
	}

	// Output:
	// len: 3
	// 3
	// 2
	// 1
}

// ExampleBuild demonstrates the builder API for structure selection.
func ExampleBuild() {
	ring := lfds.Build[int](lfds.New().Bounded(64).SingleProducer().SingleConsumer())
	queue := lfds.Build[int](lfds.New().SingleConsumer())
	stack := lfds.Build[int](lfds.New().LIFO())

	fmt.Printf("%T\n", ring)
	fmt.Printf("%T\n", queue)
	fmt.Printf("%T\n", stack)

	// Output:
	// *lfds.RingBuffer[int]
	// *lfds.Queue[int]
	// *lfds.Stack[int]
}

// ExampleIsWouldBlock demonstrates error handling patterns.
func ExampleIsWouldBlock() {
	r := lfds.NewRingBuffer[int](2) // Cap()=1

	one, two := 1, 2
	r.Enqueue(&one)

	err := r.Enqueue(&two)
	if lfds.IsWouldBlock(err) {
		fmt.Println("Ring full - applying backpressure")
	}

	r.Dequeue()

	_, err = r.Dequeue()
	if lfds.IsWouldBlock(err) {
		fmt.Println("Ring empty - no data available")
	}

	// Output:
	// Ring full - applying backpressure
	// Ring empty - no data available
}
