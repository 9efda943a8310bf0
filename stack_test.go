// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/fixed"
	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// Stack - Basic Operations
// =============================================================================

func TestStackBasic(t *testing.T) {
	var buf [4]int
	s := fixed.NewStack(buf[:], 0)

	if s.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", s.Cap())
	}
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("new stack: Len=%d IsEmpty=%v", s.Len(), s.IsEmpty())
	}
	if s.Top() != 4 {
		t.Fatalf("Top on empty: got %d, want 4", s.Top())
	}

	for i := range 4 {
		if err := s.Add(i + 1); err != nil {
			t.Fatalf("Add(%d): %v", i+1, err)
		}
	}
	if !s.IsFull() {
		t.Fatalf("IsFull: got false, want true")
	}
	if err := s.Add(99); !errors.Is(err, fixed.ErrWouldBlock) {
		t.Fatalf("Add on full: got %v, want ErrWouldBlock", err)
	}

	// Grows downward: the last Add is at index 0.
	if diff := cmp.Diff([]int{4, 3, 2, 1}, buf[:]); diff != "" {
		t.Fatalf("buffer layout (-want +got):\n%s", diff)
	}

	if v, err := s.Peek(); err != nil || v != 4 {
		t.Fatalf("Peek: got (%d, %v), want (4, nil)", v, err)
	}

	for want := 4; want >= 1; want-- {
		v, err := s.Remove()
		if err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if v != want {
			t.Fatalf("Remove: got %d, want %d", v, want)
		}
	}
	if _, err := s.Remove(); !errors.Is(err, fixed.ErrWouldBlock) {
		t.Fatalf("Remove on empty: got %v, want ErrWouldBlock", err)
	}
	if _, err := s.Peek(); !errors.Is(err, fixed.ErrWouldBlock) {
		t.Fatalf("Peek on empty: got %v, want ErrWouldBlock", err)
	}
}

func TestStackInitialLength(t *testing.T) {
	buf := []int{0, 0, 30, 20, 10}
	s := fixed.NewStack(buf, 3)

	if s.Len() != 3 || s.Top() != 2 {
		t.Fatalf("Len/Top: got %d/%d, want 3/2", s.Len(), s.Top())
	}
	if diff := cmp.Diff([]int{30, 20, 10}, s.Values()); diff != "" {
		t.Fatalf("Values (-want +got):\n%s", diff)
	}
	if got := s.String(); got != "[30 20 10]" {
		t.Fatalf("String: got %q, want %q", got, "[30 20 10]")
	}
}

func TestStackInitialLengthOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewStack(n=%d): expected panic", n)
				}
			}()
			fixed.NewStack(make([]int, 4), n)
		}()
	}
}

func TestStackPeekMut(t *testing.T) {
	s := fixed.NewStack(make([]int, 2), 0)
	s.AddOrPanic(7, "overflow")

	p := s.PeekMutOrPanic("underflow")
	*p = 8
	if v := s.RemoveOrPanic("underflow"); v != 8 {
		t.Fatalf("Remove after PeekMut: got %d, want 8", v)
	}
	if _, err := s.PeekMut(); !errors.Is(err, fixed.ErrWouldBlock) {
		t.Fatalf("PeekMut on empty: got %v, want ErrWouldBlock", err)
	}
}

// =============================================================================
// Stack - Bulk Operations
// =============================================================================

func TestStackExtendMatchesAdd(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}

	a := fixed.NewStack(make([]int, 4), 0)
	a.AddOrPanic(100, "overflow")
	n := a.Extend(values)

	b := fixed.NewStack(make([]int, 4), 0)
	b.AddOrPanic(100, "overflow")
	m := 0
	for _, v := range values {
		if b.Add(v) != nil {
			break
		}
		m++
	}

	if n != 3 || m != 3 {
		t.Fatalf("Extend count: got %d (sequential %d), want 3", n, m)
	}
	if diff := cmp.Diff(b.Values(), a.Values()); diff != "" {
		t.Fatalf("Extend vs Add (-add +extend):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, values); diff != "" {
		t.Fatalf("Extend modified input (-want +got):\n%s", diff)
	}
}

func TestStackExtendOrPanic(t *testing.T) {
	s := fixed.NewStack(make([]int, 3), 0)
	s.ExtendOrPanic([]int{1, 2}, "overflow")

	msg := catchPanic(t, func() { s.ExtendOrPanic([]int{3, 4}, "stack overflow") })
	if msg != "stack overflow" {
		t.Fatalf("panic message: got %q, want %q", msg, "stack overflow")
	}
	// Unchanged after the failed call.
	if diff := cmp.Diff([]int{2, 1}, s.Values()); diff != "" {
		t.Fatalf("Values after failed ExtendOrPanic (-want +got):\n%s", diff)
	}
}

func TestStackForgetMatchesRemove(t *testing.T) {
	for k := 0; k <= 6; k++ {
		a := fixed.NewStack(make([]int, 5), 0)
		b := fixed.NewStack(make([]int, 5), 0)
		a.Extend([]int{1, 2, 3, 4, 5})
		b.Extend([]int{1, 2, 3, 4, 5})

		var forgotten []int
		n := a.ForgetFunc(k, func(v int) { forgotten = append(forgotten, v) })

		var removed []int
		for range k {
			v, err := b.Remove()
			if err != nil {
				break
			}
			removed = append(removed, v)
		}

		if n != len(removed) {
			t.Fatalf("Forget(%d): got %d, want %d", k, n, len(removed))
		}
		if diff := cmp.Diff(removed, forgotten); diff != "" {
			t.Fatalf("Forget(%d) order (-remove +forget):\n%s", k, diff)
		}
		if diff := cmp.Diff(b.Values(), a.Values()); diff != "" {
			t.Fatalf("Forget(%d) remaining (-remove +forget):\n%s", k, diff)
		}
	}
}

func TestStackForgetAndZero(t *testing.T) {
	buf := make([]int, 4)
	s := fixed.NewStack(buf, 0)
	s.Extend([]int{1, 2, 3})

	if n := s.ForgetAndZero(2); n != 2 {
		t.Fatalf("ForgetAndZero: got %d, want 2", n)
	}
	if diff := cmp.Diff([]int{0, 0, 0, 1}, buf); diff != "" {
		t.Fatalf("buffer (-want +got):\n%s", diff)
	}
	if n := s.Forget(-1); n != 0 {
		t.Fatalf("Forget(-1): got %d, want 0", n)
	}
}

func TestStackClear(t *testing.T) {
	buf := make([]string, 3)
	s := fixed.NewStack(buf, 0)
	s.Extend([]string{"a", "b"})

	s.ClearAndZero()
	if !s.IsEmpty() {
		t.Fatalf("IsEmpty after ClearAndZero: got false")
	}
	if diff := cmp.Diff([]string{"", "", ""}, buf); diff != "" {
		t.Fatalf("buffer (-want +got):\n%s", diff)
	}

	s.Extend([]string{"c"})
	s.Clear()
	if s.Len() != 0 || buf[2] != "c" {
		t.Fatalf("Clear: Len=%d buf=%q", s.Len(), buf)
	}
}

func TestStackMoveData(t *testing.T) {
	old := make([]int, 3)
	s := fixed.NewStack(old, 0)
	s.Extend([]int{1, 2, 3})

	dst := make([]int, 5)
	s.MoveDataAndZero(dst)

	if s.Cap() != 5 || s.Len() != 3 {
		t.Fatalf("after move: Cap=%d Len=%d, want 5/3", s.Cap(), s.Len())
	}
	if diff := cmp.Diff([]int{0, 0, 3, 2, 1}, dst); diff != "" {
		t.Fatalf("dst (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 0}, old); diff != "" {
		t.Fatalf("old buffer (-want +got):\n%s", diff)
	}

	s.AddOrPanic(4, "overflow")
	if v := s.RemoveOrPanic("underflow"); v != 4 {
		t.Fatalf("Remove after move: got %d, want 4", v)
	}

	defer func() {
		if r := recover(); r != "fixed: destination buffer too small" {
			t.Fatalf("MoveData into short buffer: got %v", r)
		}
	}()
	s.MoveData(make([]int, 2))
}

func TestStackAllEarlyStop(t *testing.T) {
	s := fixed.NewStack(make([]int, 4), 0)
	s.Extend([]int{1, 2, 3, 4})

	var got []int
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{4, 3}) {
		t.Fatalf("All: got %v, want [4 3]", got)
	}
}
