// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import "cmp"

// Prioritized is implemented by element types that expose a priority key.
// Greater keys are served first by a [PriorityQueue].
//
// To serve small numbers first (e.g. "priority 0 is most urgent"), invert
// the key, for example 255 - prio for a uint8 field.
type Prioritized[K cmp.Ordered] interface {
	Priority() K
}

// Integer is the set of built-in integer types. Integers are their own
// priority under [Natural]. Floating-point types are excluded because NaN
// has no place in a total order.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Order compares two elements by priority. It returns a negative number
// when a has lower priority than b, zero when they are equal, and a
// positive number otherwise.
type Order[T any] func(a, b T) int

// ByPriority orders elements by their Priority method.
func ByPriority[T Prioritized[K], K cmp.Ordered]() Order[T] {
	return func(a, b T) int { return cmp.Compare(a.Priority(), b.Priority()) }
}

// ByKey orders elements by the key extracted with key.
func ByKey[T any, K cmp.Ordered](key func(T) K) Order[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Natural orders integers by value.
func Natural[T Integer]() Order[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Less reports whether a has lower priority than b.
func (o Order[T]) Less(a, b T) bool { return o(a, b) < 0 }

// Greater reports whether a has higher priority than b.
func (o Order[T]) Greater(a, b T) bool { return o(a, b) > 0 }

// LessEqual reports whether a has lower or equal priority.
func (o Order[T]) LessEqual(a, b T) bool { return o(a, b) <= 0 }

// GreaterEqual reports whether a has higher or equal priority.
func (o Order[T]) GreaterEqual(a, b T) bool { return o(a, b) >= 0 }

// Equal reports whether a and b have the same priority.
func (o Order[T]) Equal(a, b T) bool { return o(a, b) == 0 }

// NotEqual reports whether a and b have different priorities.
func (o Order[T]) NotEqual(a, b T) bool { return o(a, b) != 0 }

// Min returns the element with the lower priority, a on ties.
func (o Order[T]) Min(a, b T) T {
	if o.LessEqual(a, b) {
		return a
	}
	return b
}

// Max returns the element with the higher priority, a on ties.
func (o Order[T]) Max(a, b T) T {
	if o.GreaterEqual(a, b) {
		return a
	}
	return b
}
