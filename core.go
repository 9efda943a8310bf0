// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "iter"

// Core is the minimal capability a fixed-capacity container implements.
//
// Core methods do not check their preconditions. The Unchecked methods
// assume the caller has already consulted IsEmpty or IsFull; violating
// that assumption corrupts the container or panics with an index error.
// [Container] layers the checked API over any Core, so an implementation
// only has to provide these methods to inherit the full facade.
//
// Implementations never resize their backing buffer and never read slots
// outside the occupied region as valid elements.
type Core[T any] interface {
	// Len returns the number of occupied slots in O(1).
	Len() int

	// Cap returns the length of the backing buffer in O(1).
	Cap() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// IsFull reports whether Len() == Cap().
	IsFull() bool

	// PeekUnchecked returns the slot holding the element the next
	// RemoveUnchecked would return. The container must not be empty.
	PeekUnchecked() *T

	// RemoveUnchecked marks the next element as removed and returns its
	// slot. The slot still holds the element until it is overwritten.
	// The container must not be empty.
	RemoveUnchecked() *T

	// ForgetUnchecked removes min(n, Len()) elements and returns how many
	// were removed. f, if not nil, is called on every evicted slot in the
	// order repeated RemoveUnchecked calls would have returned them.
	ForgetUnchecked(n int, f func(*T)) int

	// AddUnchecked inserts v. The container must not be full.
	AddUnchecked(v T)

	// ExtendFrom copies leading elements of values into the container until
	// it is full and returns how many were copied. The result is the same as
	// adding the copied elements one at a time. values is not modified.
	ExtendFrom(values []T) int

	// ClearUnchecked passes the occupied region to f (as at most two
	// sub-slices) and then marks the container empty. f may be nil.
	ClearUnchecked(f func([]T))

	// MoveUnchecked copies the occupied elements into dst, adopts dst as
	// the new backing buffer and passes the old buffer to f. The copied
	// elements are contiguous in dst. len(dst) must be >= Len(). f may be nil.
	MoveUnchecked(dst []T, f func([]T))

	// All yields the elements in inspection order. It is meant for
	// debugging and printing.
	All() iter.Seq[T]
}

// checkLen panics if n is not a valid initial length for buf.
func checkLen[T any](buf []T, n int) {
	if n < 0 || n > len(buf) {
		panic("fixed: initial length out of range")
	}
}
