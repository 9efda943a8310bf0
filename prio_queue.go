// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import (
	"iter"
	"slices"
)

// PriorityQueue is a fixed-capacity, greatest-priority-first queue.
//
// The occupied prefix data[:n] is a binary max-heap: the children of index
// i are 2i+1 and 2i+2, and no child has a higher priority than its parent.
// Every public operation restores that property before returning.
//
// Elements with equal priority are not kept in insertion order.
//
// Complexity: Add and Remove O(log n), construction O(n), All O(n log n)
type PriorityQueue[T any] struct {
	Container[T]
	data  []T
	n     int
	order Order[T]
}

// NewPriorityQueue creates a priority queue over buf holding n elements
// ordered by order.
//
// buf[:n] is taken as valid elements in any order and is heapified in
// place in O(n). Pass n == 0 for an empty queue.
// Panics if n < 0 or n > len(buf), or if order is nil.
//
// Example:
//
//	q := fixed.NewPriorityQueue(make([]int, 16), 0, fixed.Natural[int]())
//	q.Add(3)
//	q.Add(7)
//	v, _ := q.Remove() // 7
func NewPriorityQueue[T any](buf []T, n int, order Order[T]) *PriorityQueue[T] {
	checkLen(buf, n)
	if order == nil {
		panic("fixed: nil order")
	}
	q := &PriorityQueue[T]{data: buf, n: n, order: order}
	q.heapify()
	q.Container = Wrap[T](q)
	return q
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return q.n }

// Cap returns the queue capacity.
func (q *PriorityQueue[T]) Cap() int { return len(q.data) }

// IsEmpty reports whether the queue is empty.
func (q *PriorityQueue[T]) IsEmpty() bool { return q.n == 0 }

// IsFull reports whether the queue is full.
func (q *PriorityQueue[T]) IsFull() bool { return q.n == len(q.data) }

// Order returns the ordering the queue was built with.
func (q *PriorityQueue[T]) Order() Order[T] { return q.order }

// PeekUnchecked implements [Core].
func (q *PriorityQueue[T]) PeekUnchecked() *T { return &q.data[0] }

// RemoveUnchecked implements [Core].
// The root is swapped to the freed tail slot, which is returned.
func (q *PriorityQueue[T]) RemoveUnchecked() *T {
	q.n--
	q.data[0], q.data[q.n] = q.data[q.n], q.data[0]
	q.siftDown(0, q.n)
	return &q.data[q.n]
}

// ForgetUnchecked implements [Core].
func (q *PriorityQueue[T]) ForgetUnchecked(n int, f func(*T)) int {
	k := min(n, q.n)
	if f == nil && k == q.n {
		// Draining everything: nothing observes the order.
		q.n = 0
		return k
	}
	for range k {
		p := q.RemoveUnchecked()
		if f != nil {
			f(p)
		}
	}
	return k
}

// AddUnchecked implements [Core].
func (q *PriorityQueue[T]) AddUnchecked(v T) {
	q.data[q.n] = v
	q.n++
	q.siftUp(q.n - 1)
}

// ExtendFrom implements [Core].
func (q *PriorityQueue[T]) ExtendFrom(values []T) int {
	k := copy(q.data[q.n:], values)
	for i := q.n; i < q.n+k; i++ {
		q.siftUp(i)
	}
	q.n += k
	return k
}

// ClearUnchecked implements [Core].
func (q *PriorityQueue[T]) ClearUnchecked(f func([]T)) {
	if f != nil {
		f(q.data[:q.n])
	}
	q.n = 0
}

// MoveUnchecked implements [Core].
// The heap array is copied as is into dst[:Len()].
func (q *PriorityQueue[T]) MoveUnchecked(dst []T, f func([]T)) {
	copy(dst, q.data[:q.n])
	old := q.data
	q.data = dst
	if f != nil {
		f(old)
	}
}

// All sorts the queue in place into descending priority order and yields
// the elements highest first.
//
// A descending array is itself a valid max-heap, so the queue stays
// consistent afterwards. The sort costs O(n log n); All is for inspection
// and printing only.
func (q *PriorityQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.sort()
		for _, v := range q.data[:q.n] {
			if !yield(v) {
				return
			}
		}
	}
}

// Verify reports whether the occupied prefix satisfies the heap property.
func (q *PriorityQueue[T]) Verify() bool {
	for i := 1; i < q.n; i++ {
		if q.order.Greater(q.data[i], q.data[(i-1)/2]) {
			return false
		}
	}
	return true
}

// siftDown moves data[i] towards the leaves of the heap data[:n].
// The larger child is chosen, the right one on ties.
func (q *PriorityQueue[T]) siftDown(i, n int) {
	for {
		j := 2*i + 1
		if j >= n {
			return
		}
		if k := j + 1; k < n && q.order.LessEqual(q.data[j], q.data[k]) {
			j = k
		}
		if !q.order.Greater(q.data[j], q.data[i]) {
			return
		}
		q.data[i], q.data[j] = q.data[j], q.data[i]
		i = j
	}
}

// siftUp moves data[i] towards the root.
func (q *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		j := (i - 1) / 2
		if q.order.LessEqual(q.data[i], q.data[j]) {
			return
		}
		q.data[i], q.data[j] = q.data[j], q.data[i]
		i = j
	}
}

func (q *PriorityQueue[T]) heapify() {
	for i := q.n/2 - 1; i >= 0; i-- {
		q.siftDown(i, q.n)
	}
}

// sort heapsorts data[:n] ascending, then reverses it.
func (q *PriorityQueue[T]) sort() {
	for i := q.n - 1; i > 0; i-- {
		q.data[0], q.data[i] = q.data[i], q.data[0]
		q.siftDown(0, i)
	}
	slices.Reverse(q.data[:q.n])
}
