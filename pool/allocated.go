// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "fmt"

// Allocated is the owning guard over one allocator slot.
//
// A guard is either holding a slot or released. The zero value is
// released. Release returns the slot exactly once: releasing again, or
// releasing a copy of a guard whose slot was already returned, is a no-op.
//
// Go has no destructors. Pair every Allocate with a Release, typically
// deferred:
//
//	g := procs.Allocate()
//	defer g.Release()
//	p := g.Get()
type Allocated[T any] struct {
	pool *Allocator[T] // nil when released
	slot int
	gen  uint32
}

// Get returns the slot. The pointer is valid until the guard is released.
// Panics if the guard is released or stale.
func (g *Allocated[T]) Get() *T {
	if !g.Valid() {
		panic("pool: use of released guard")
	}
	return &g.pool.slots[g.slot]
}

// Valid reports whether the guard still owns its slot.
func (g *Allocated[T]) Valid() bool {
	return g.pool != nil && g.pool.current(g.slot, g.gen)
}

// Slot returns the index of the slot in the allocator, or -1 if the guard
// is released.
func (g *Allocated[T]) Slot() int {
	if g.pool == nil {
		return -1
	}
	return g.slot
}

// Release returns the slot to its allocator and reports whether this call
// did so. The guard is released afterwards.
//
// Panics with the allocator's corruption message, marked with
// [ErrCorrupted], if the free list cannot take the slot back.
func (g *Allocated[T]) Release() bool {
	if g.pool == nil {
		return false
	}
	p := g.pool
	g.pool = nil
	return p.deallocate(g.slot, g.gen)
}

// Move transfers ownership to the returned guard and leaves g released.
func (g *Allocated[T]) Move() Allocated[T] {
	m := *g
	*g = Allocated[T]{}
	return m
}

// String returns a debug description of the guard.
func (g Allocated[T]) String() string {
	if g.pool == nil {
		return "Allocated(released)"
	}
	return fmt.Sprintf("Allocated(%s#%d@%d)", g.pool.name, g.slot, g.gen)
}
