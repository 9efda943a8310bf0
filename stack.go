// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "iter"

// Stack is a fixed-capacity LIFO container.
//
// Stack follows the x86 convention: elements fill the backing buffer from
// the end towards index 0, so the occupied region is buf[Top():] with the
// most recently added element at buf[Top()]. A Stack laid over a machine
// stack therefore reads as a pushed frame from the top upward.
//
// Memory: the caller's buffer, no per-element overhead
type Stack[T any] struct {
	Container[T]
	data []T
	last int // index of the top element; len(data) when empty
}

// NewStack creates a stack over buf holding n elements.
//
// The occupied region of a stack is the tail of buf: buf[len(buf)-n:] is
// taken as already pushed, with buf[len(buf)-n] on top. The elements are
// neither validated nor copied. Pass n == 0 for an empty stack.
// Panics if n < 0 or n > len(buf).
func NewStack[T any](buf []T, n int) *Stack[T] {
	checkLen(buf, n)
	s := &Stack[T]{data: buf, last: len(buf) - n}
	s.Container = Wrap[T](s)
	return s
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.data) - s.last }

// Cap returns the stack capacity.
func (s *Stack[T]) Cap() int { return len(s.data) }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.last == len(s.data) }

// IsFull reports whether the stack is full.
func (s *Stack[T]) IsFull() bool { return s.last == 0 }

// Top returns the index in the backing buffer of the top element, or
// Cap() if the stack is empty.
func (s *Stack[T]) Top() int { return s.last }

// PeekUnchecked implements [Core].
func (s *Stack[T]) PeekUnchecked() *T { return &s.data[s.last] }

// RemoveUnchecked implements [Core].
func (s *Stack[T]) RemoveUnchecked() *T {
	p := &s.data[s.last]
	s.last++
	return p
}

// ForgetUnchecked implements [Core].
func (s *Stack[T]) ForgetUnchecked(n int, f func(*T)) int {
	stop := s.last + min(n, s.Len())
	if f != nil {
		for i := s.last; i < stop; i++ {
			f(&s.data[i])
		}
	}
	k := stop - s.last
	s.last = stop
	return k
}

// AddUnchecked implements [Core].
func (s *Stack[T]) AddUnchecked(v T) {
	s.last--
	s.data[s.last] = v
}

// ExtendFrom implements [Core].
// values[0] is pushed first and ends up deepest.
func (s *Stack[T]) ExtendFrom(values []T) int {
	n := min(s.last, len(values))
	for i, v := range values[:n] {
		s.data[s.last-1-i] = v
	}
	s.last -= n
	return n
}

// ClearUnchecked implements [Core].
func (s *Stack[T]) ClearUnchecked(f func([]T)) {
	if f != nil {
		f(s.data[s.last:])
	}
	s.last = len(s.data)
}

// MoveUnchecked implements [Core].
// The elements keep their order and occupy the tail of dst.
func (s *Stack[T]) MoveUnchecked(dst []T, f func([]T)) {
	n := s.Len()
	copy(dst[len(dst)-n:], s.data[s.last:])
	old := s.data
	s.data = dst
	s.last = len(dst) - n
	if f != nil {
		f(old)
	}
}

// All yields the elements from the top of the stack down.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.data[s.last:] {
			if !yield(v) {
				return
			}
		}
	}
}
