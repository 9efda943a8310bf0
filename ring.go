// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "iter"

// Ring is a fixed-capacity FIFO queue over a circular buffer.
//
// first indexes the oldest element and next the slot the next Add writes.
// When first == next the queue is either empty or full; the full flag
// tells the two apart. Capacity need not be a power of 2.
//
// Memory: the caller's buffer, no per-element overhead
type Ring[T any] struct {
	Container[T]
	data  []T
	first int
	next  int
	full  bool
}

// NewRing creates a queue over buf holding n elements.
//
// buf[:n] is taken as already enqueued, oldest first. The elements are
// neither validated nor copied. Pass n == 0 for an empty queue.
// Panics if buf is empty, or if n < 0 or n > len(buf).
func NewRing[T any](buf []T, n int) *Ring[T] {
	if len(buf) == 0 {
		panic("fixed: ring buffer must not be empty")
	}
	checkLen(buf, n)
	r := &Ring[T]{data: buf, full: n == len(buf)}
	if !r.full {
		r.next = n
	}
	r.Container = Wrap[T](r)
	return r
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int {
	switch {
	case r.full:
		return len(r.data)
	case r.first <= r.next:
		return r.next - r.first
	default:
		return len(r.data) - (r.first - r.next)
	}
}

// Cap returns the queue capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }

// IsEmpty reports whether the queue is empty.
func (r *Ring[T]) IsEmpty() bool { return r.first == r.next && !r.full }

// IsFull reports whether the queue is full.
func (r *Ring[T]) IsFull() bool { return r.full }

// contiguous reports whether the occupied region is data[first:next].
func (r *Ring[T]) contiguous() bool { return r.first <= r.next && !r.full }

// PeekUnchecked implements [Core].
func (r *Ring[T]) PeekUnchecked() *T { return &r.data[r.first] }

// RemoveUnchecked implements [Core].
func (r *Ring[T]) RemoveUnchecked() *T {
	p := &r.data[r.first]
	r.first++
	if r.first == len(r.data) {
		r.first = 0
	}
	r.full = false
	return p
}

// ForgetUnchecked implements [Core].
// Elements are evicted from the oldest end over at most two ranges.
func (r *Ring[T]) ForgetUnchecked(n int, f func(*T)) int {
	k := min(n, r.Len())
	if k == 0 {
		return 0
	}
	// Right part: data[first:end], then the wrapped part data[0:rest].
	right := min(k, len(r.data)-r.first)
	if f != nil {
		for i := r.first; i < r.first+right; i++ {
			f(&r.data[i])
		}
		for i := 0; i < k-right; i++ {
			f(&r.data[i])
		}
	}
	r.first = (r.first + k) % len(r.data)
	r.full = false
	return k
}

// AddUnchecked implements [Core].
func (r *Ring[T]) AddUnchecked(v T) {
	r.data[r.next] = v
	r.next++
	if r.next == len(r.data) {
		r.next = 0
	}
	if r.next == r.first {
		r.full = true
	}
}

// ExtendFrom implements [Core].
func (r *Ring[T]) ExtendFrom(values []T) int {
	if r.full || len(values) == 0 {
		return 0
	}
	var n int
	switch {
	case r.next < r.first:
		// X _ X: free space in the middle
		n = copy(r.data[r.next:r.first], values)
	case len(values) < len(r.data)-r.next:
		// X X _: enough free space at the right end
		n = copy(r.data[r.next:], values)
	default:
		// _ X _: free space at both ends
		n = copy(r.data[r.next:], values)
		n += copy(r.data[:r.first], values[n:])
	}
	r.next = (r.next + n) % len(r.data)
	if r.next == r.first {
		r.full = true
	}
	return n
}

// ClearUnchecked implements [Core].
func (r *Ring[T]) ClearUnchecked(f func([]T)) {
	if f != nil && !r.IsEmpty() {
		if r.contiguous() {
			f(r.data[r.first:r.next])
		} else {
			f(r.data[r.first:])
			f(r.data[:r.next])
		}
	}
	r.first, r.next, r.full = 0, 0, false
}

// MoveUnchecked implements [Core].
// The elements occupy dst[:Len()] oldest first.
func (r *Ring[T]) MoveUnchecked(dst []T, f func([]T)) {
	if len(dst) == 0 {
		panic("fixed: ring buffer must not be empty")
	}
	n := r.Len()
	if r.contiguous() {
		copy(dst, r.data[r.first:r.next])
	} else {
		m := copy(dst, r.data[r.first:])
		copy(dst[m:], r.data[:r.next])
	}
	old := r.data
	r.data = dst
	r.first = 0
	r.full = n == len(dst)
	r.next = n % len(dst)
	if f != nil {
		f(old)
	}
}

// All yields the elements oldest first.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.IsEmpty() {
			return
		}
		var head, tail []T
		if r.contiguous() {
			head = r.data[r.first:r.next]
		} else {
			head, tail = r.data[r.first:], r.data[:r.next]
		}
		for _, v := range head {
			if !yield(v) {
				return
			}
		}
		for _, v := range tail {
			if !yield(v) {
				return
			}
		}
	}
}
