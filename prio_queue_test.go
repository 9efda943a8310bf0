// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/fixed"
	"github.com/google/go-cmp/cmp"
)

type job struct {
	name string
	prio uint8
}

func (j job) Priority() uint8 { return j.prio }

// =============================================================================
// PriorityQueue - Basic Operations
// =============================================================================

func TestPriorityQueueOrder(t *testing.T) {
	q := fixed.NewPriorityQueue(make([]int, 8), 0, fixed.Natural[int]())

	for _, v := range []int{5, 1, 8, 3, 9, 2, 7, 4} {
		if err := q.Add(v); err != nil {
			t.Fatalf("Add(%d): %v", v, err)
		}
	}
	if err := q.Add(100); !errors.Is(err, fixed.ErrWouldBlock) {
		t.Fatalf("Add on full: got %v, want ErrWouldBlock", err)
	}
	if v := q.PeekOrPanic("empty"); v != 9 {
		t.Fatalf("Peek: got %d, want 9", v)
	}

	var got []int
	for !q.IsEmpty() {
		got = append(got, q.RemoveOrPanic("empty"))
		if !q.Verify() {
			t.Fatalf("heap property broken after Remove: %v", got)
		}
	}
	if diff := cmp.Diff([]int{9, 8, 7, 5, 4, 3, 2, 1}, got); diff != "" {
		t.Fatalf("Remove order (-want +got):\n%s", diff)
	}
}

func TestPriorityQueueHeapify(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6, 7, 0, 0}
	q := fixed.NewPriorityQueue(buf, 7, fixed.Natural[int]())

	if !q.Verify() {
		t.Fatalf("Verify after construction: got false, buf=%v", buf)
	}
	if q.Len() != 7 || q.Cap() != 9 {
		t.Fatalf("Len/Cap: got %d/%d, want 7/9", q.Len(), q.Cap())
	}
	if v := q.PeekOrPanic("empty"); v != 7 {
		t.Fatalf("Peek: got %d, want 7", v)
	}
}

func TestPriorityQueueNilOrderPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "fixed: nil order" {
			t.Fatalf("NewPriorityQueue(nil order): got %v", r)
		}
	}()
	fixed.NewPriorityQueue[int](make([]int, 1), 0, nil)
}

func TestPriorityQueueByPriority(t *testing.T) {
	q := fixed.NewPriorityQueue(make([]job, 4), 0, fixed.ByPriority[job, uint8]())
	q.ExtendOrPanic([]job{{"idle", 0}, {"irq", 3}, {"user", 1}, {"sys", 2}}, "full")

	var names []string
	for range 4 {
		names = append(names, q.RemoveOrPanic("empty").name)
	}
	if diff := cmp.Diff([]string{"irq", "sys", "user", "idle"}, names); diff != "" {
		t.Fatalf("Remove order (-want +got):\n%s", diff)
	}
}

func TestPriorityQueueByKeyInverted(t *testing.T) {
	// Smaller numbers first.
	q := fixed.NewPriorityQueue(make([]int, 4), 0, fixed.ByKey(func(v int) int { return -v }))
	q.Extend([]int{3, 1, 2})
	if diff := cmp.Diff([]int{1, 2, 3}, q.Values()); diff != "" {
		t.Fatalf("Values (-want +got):\n%s", diff)
	}
}

// =============================================================================
// PriorityQueue - Heap Property
// =============================================================================

// TestPriorityQueueRandomOps applies a seeded random sequence of mutations
// and checks the heap property and the multiset after each one.
func TestPriorityQueueRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	q := fixed.NewPriorityQueue(make([]int, 32), 0, fixed.Natural[int]())
	var model []int

	for step := range 2000 {
		switch op := rng.IntN(4); op {
		case 0, 1:
			v := rng.IntN(50)
			if q.Add(v) == nil {
				model = append(model, v)
			}
		case 2:
			v, err := q.Remove()
			if err != nil {
				if len(model) != 0 {
					t.Fatalf("step %d: Remove: %v with %d elements", step, err, len(model))
				}
				continue
			}
			if m := slices.Max(model); v != m {
				t.Fatalf("step %d: Remove got %d, want max %d", step, v, m)
			}
			i := slices.Index(model, v)
			model = slices.Delete(model, i, i+1)
		case 3:
			vs := []int{rng.IntN(50), rng.IntN(50), rng.IntN(50)}
			n := q.Extend(vs)
			model = append(model, vs[:n]...)
		}
		if !q.Verify() {
			t.Fatalf("step %d: heap property broken", step)
		}
		if q.Len() != len(model) {
			t.Fatalf("step %d: Len got %d, want %d", step, q.Len(), len(model))
		}
	}
}

// TestPriorityQueueAllSorts checks that inspection yields descending order,
// keeps the multiset and leaves a valid heap behind.
func TestPriorityQueueAllSorts(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	q := fixed.NewPriorityQueue(make([]int, 64), 0, fixed.Natural[int]())
	var model []int
	for range 40 {
		v := rng.IntN(20)
		q.AddOrPanic(v, "full")
		model = append(model, v)
	}

	got := q.Values()
	slices.Sort(model)
	slices.Reverse(model)
	if diff := cmp.Diff(model, got); diff != "" {
		t.Fatalf("Values (-want +got):\n%s", diff)
	}
	if !q.Verify() {
		t.Fatalf("heap property broken after All")
	}

	// Removal order is unchanged by inspection.
	var removed []int
	for !q.IsEmpty() {
		removed = append(removed, q.RemoveOrPanic("empty"))
	}
	if diff := cmp.Diff(model, removed); diff != "" {
		t.Fatalf("Remove after All (-want +got):\n%s", diff)
	}
}

// =============================================================================
// PriorityQueue - Bulk Operations
// =============================================================================

func TestPriorityQueueForgetMatchesRemove(t *testing.T) {
	input := []int{4, 9, 1, 7, 7, 3, 8}
	for k := 0; k <= len(input)+1; k++ {
		a := fixed.NewPriorityQueue(slices.Clone(input), len(input), fixed.Natural[int]())
		b := fixed.NewPriorityQueue(slices.Clone(input), len(input), fixed.Natural[int]())

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
		if !a.Verify() {
			t.Fatalf("Forget(%d): heap property broken", k)
		}
		if diff := cmp.Diff(b.Values(), a.Values()); diff != "" {
			t.Fatalf("Forget(%d) remaining (-remove +forget):\n%s", k, diff)
		}
	}
}

func TestPriorityQueueForgetAll(t *testing.T) {
	q := fixed.NewPriorityQueue([]int{3, 1, 2}, 3, fixed.Natural[int]())
	if n := q.Forget(10); n != 3 {
		t.Fatalf("Forget: got %d, want 3", n)
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty after Forget: got false")
	}
	q.AddOrPanic(5, "full")
	if v := q.RemoveOrPanic("empty"); v != 5 {
		t.Fatalf("Remove: got %d, want 5", v)
	}
}

func TestPriorityQueueMoveData(t *testing.T) {
	old := make([]int, 4)
	q := fixed.NewPriorityQueue(old, 0, fixed.Natural[int]())
	q.Extend([]int{2, 6, 4})

	dst := make([]int, 8)
	q.MoveDataAndZero(dst)

	if !q.Verify() || q.Len() != 3 || q.Cap() != 8 {
		t.Fatalf("after move: Verify=%v Len=%d Cap=%d", q.Verify(), q.Len(), q.Cap())
	}
	if diff := cmp.Diff([]int{0, 0, 0, 0}, old); diff != "" {
		t.Fatalf("old buffer (-want +got):\n%s", diff)
	}
	if v := q.RemoveOrPanic("empty"); v != 6 {
		t.Fatalf("Remove after move: got %d, want 6", v)
	}
}

// =============================================================================
// Order
// =============================================================================

func TestOrderHelpers(t *testing.T) {
	o := fixed.ByPriority[job, uint8]()
	lo, hi := job{"lo", 1}, job{"hi", 2}
	lo2 := job{"lo2", 1}

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"Less", o.Less(lo, hi), true},
		{"Greater", o.Greater(lo, hi), false},
		{"LessEqual", o.LessEqual(lo, lo2), true},
		{"GreaterEqual", o.GreaterEqual(lo, lo2), true},
		{"Equal", o.Equal(lo, lo2), true},
		{"NotEqual", o.NotEqual(lo, hi), true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	if got := o.Max(lo, hi); got != hi {
		t.Fatalf("Max: got %v, want %v", got, hi)
	}
	if got := o.Min(lo, lo2); got != lo {
		t.Fatalf("Min on tie: got %v, want %v", got, lo)
	}
	if got := o.Max(lo, lo2); got != lo {
		t.Fatalf("Max on tie: got %v, want %v", got, lo)
	}
}
