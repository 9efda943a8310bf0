// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"slices"
)

// Container is the checked API shared by every fixed-capacity container.
//
// Container is implemented once in terms of [Core]. The concrete containers
// ([Stack], [Ring], [PriorityQueue]) embed it, and any other Core can be
// wrapped with [Wrap] to obtain the same methods.
//
// Capacity violations are reported two ways:
//
//	Add, Peek, Remove           → ErrWouldBlock
//	AddOrPanic, RemoveOrPanic   → panic with the caller's message
//
// The OrPanic variants are meant for code where a full or empty container
// is a sizing bug rather than a runtime condition.
type Container[T any] struct {
	core Core[T]
}

// Wrap returns the checked API over core.
func Wrap[T any](core Core[T]) Container[T] {
	return Container[T]{core: core}
}

// Len returns the number of elements in the container.
func (c Container[T]) Len() int { return c.core.Len() }

// Cap returns the maximum number of elements the container can hold.
func (c Container[T]) Cap() int { return c.core.Cap() }

// IsEmpty reports whether the container holds no elements.
func (c Container[T]) IsEmpty() bool { return c.core.IsEmpty() }

// IsFull reports whether the container is at capacity.
func (c Container[T]) IsFull() bool { return c.core.IsFull() }

// Peek returns a copy of the element Remove would return, without removing
// it. Returns (zero-value, ErrWouldBlock) if the container is empty.
func (c Container[T]) Peek() (T, error) {
	if c.core.IsEmpty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return *c.core.PeekUnchecked(), nil
}

// PeekOrPanic is like Peek but panics with msg if the container is empty.
func (c Container[T]) PeekOrPanic(msg string) T {
	if c.core.IsEmpty() {
		Raise(msg, ErrWouldBlock)
	}
	return *c.core.PeekUnchecked()
}

// PeekMut returns a pointer to the slot holding the element Remove would
// return. The pointer is valid until the container is next modified.
// Modifying a PriorityQueue element's priority through it breaks the heap.
func (c Container[T]) PeekMut() (*T, error) {
	if c.core.IsEmpty() {
		return nil, ErrWouldBlock
	}
	return c.core.PeekUnchecked(), nil
}

// PeekMutOrPanic is like PeekMut but panics with msg if the container is empty.
func (c Container[T]) PeekMutOrPanic(msg string) *T {
	if c.core.IsEmpty() {
		Raise(msg, ErrWouldBlock)
	}
	return c.core.PeekUnchecked()
}

// Remove removes and returns the next element.
// Returns (zero-value, ErrWouldBlock) if the container is empty.
//
// The vacated slot keeps its old contents. Use RemoveAndZero when the
// element holds references that should become collectable.
func (c Container[T]) Remove() (T, error) {
	if c.core.IsEmpty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return *c.core.RemoveUnchecked(), nil
}

// RemoveOrPanic is like Remove but panics with msg if the container is empty.
func (c Container[T]) RemoveOrPanic(msg string) T {
	if c.core.IsEmpty() {
		Raise(msg, ErrWouldBlock)
	}
	return *c.core.RemoveUnchecked()
}

// RemoveAndZero is like Remove but clears the vacated slot.
func (c Container[T]) RemoveAndZero() (T, error) {
	if c.core.IsEmpty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return takeSlot(c.core.RemoveUnchecked()), nil
}

// RemoveAndZeroOrPanic is like RemoveAndZero but panics with msg if the
// container is empty.
func (c Container[T]) RemoveAndZeroOrPanic(msg string) T {
	if c.core.IsEmpty() {
		Raise(msg, ErrWouldBlock)
	}
	return takeSlot(c.core.RemoveUnchecked())
}

// Forget removes up to n elements without returning them and reports how
// many were removed. The result is the same as calling Remove that many
// times, but implementations batch the bookkeeping.
func (c Container[T]) Forget(n int) int {
	if n <= 0 {
		return 0
	}
	return c.core.ForgetUnchecked(n, nil)
}

// ForgetFunc is like Forget but passes every evicted element to f, in the
// order Remove would have returned them.
func (c Container[T]) ForgetFunc(n int, f func(T)) int {
	if n <= 0 {
		return 0
	}
	return c.core.ForgetUnchecked(n, func(p *T) { f(*p) })
}

// ForgetAndZero is like Forget but clears every vacated slot.
func (c Container[T]) ForgetAndZero(n int) int {
	if n <= 0 {
		return 0
	}
	return c.core.ForgetUnchecked(n, func(p *T) {
		var zero T
		*p = zero
	})
}

// Add inserts v. Returns ErrWouldBlock if the container is full.
func (c Container[T]) Add(v T) error {
	if c.core.IsFull() {
		return ErrWouldBlock
	}
	c.core.AddUnchecked(v)
	return nil
}

// AddOrPanic is like Add but panics with msg if the container is full.
func (c Container[T]) AddOrPanic(v T, msg string) {
	if c.core.IsFull() {
		Raise(msg, ErrWouldBlock)
	}
	c.core.AddUnchecked(v)
}

// Extend copies as many leading elements of values as fit and returns how
// many were copied. values is not modified.
func (c Container[T]) Extend(values []T) int {
	if len(values) == 0 {
		return 0
	}
	return c.core.ExtendFrom(values)
}

// ExtendOrPanic copies all of values into the container, or panics with msg
// without modifying the container if they do not all fit.
func (c Container[T]) ExtendOrPanic(values []T, msg string) {
	if c.core.Cap()-c.core.Len() < len(values) {
		Raise(msg, ErrWouldBlock)
	}
	c.Extend(values)
}

// Clear removes all elements.
func (c Container[T]) Clear() {
	c.core.ClearUnchecked(nil)
}

// ClearAndZero removes all elements and clears their slots.
func (c Container[T]) ClearAndZero() {
	c.core.ClearUnchecked(func(s []T) { clear(s) })
}

// MoveData relocates the elements into dst, which becomes the container's
// backing buffer. The elements are contiguous in dst afterwards regardless
// of the previous layout.
//
// The old buffer still holds copies of the elements; the caller must not
// treat them as owned. Panics if len(dst) < Len().
func (c Container[T]) MoveData(dst []T) {
	if len(dst) < c.core.Len() {
		panic("fixed: destination buffer too small")
	}
	c.core.MoveUnchecked(dst, nil)
}

// MoveDataAndZero is like MoveData but clears the old buffer.
func (c Container[T]) MoveDataAndZero(dst []T) {
	if len(dst) < c.core.Len() {
		panic("fixed: destination buffer too small")
	}
	c.core.MoveUnchecked(dst, func(old []T) { clear(old) })
}

// Values returns a copy of the elements in inspection order.
func (c Container[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, c.core.Len()), c.core.All())
}

// String formats the elements in inspection order.
func (c Container[T]) String() string {
	return fmt.Sprint(c.Values())
}

// takeSlot returns the value in p and clears p.
func takeSlot[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}
