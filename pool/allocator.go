// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/fixed"
	"code.hybscloud.com/iox"
	"github.com/cockroachdb/errors"
)

// Initializer is implemented by pooled types that prepare a fresh slot
// themselves. When *T implements Initializer and no explicit hook is set,
// Allocate calls Init on every slot it hands out.
type Initializer interface {
	Init()
}

// Allocator hands out the slots of a fixed array of T.
//
// Free slot indices are kept in a [fixed.Ring]. Allocate takes the oldest
// free index, so slots are reused round-robin. Every slot carries a
// generation counter that is bumped on release; an [Allocated] guard
// remembers the generation it was issued with, so a stale copy of a guard
// can never release a slot that has since been handed out again.
//
// An Allocator is not safe for concurrent use unless it was built with
// [Builder.Shared].
type Allocator[T any] struct {
	name       string
	slots      []T
	gens       []uint32
	free       *fixed.Ring[int]
	init       func(*T)
	release    func(*T)
	allocMsg   string
	deallocMsg string
	logger     *slog.Logger
	mu         sync.Locker

	allocations atomix.Int64
	releases    atomix.Int64
}

// Name returns the name the allocator was built with.
func (a *Allocator[T]) Name() string { return a.name }

// Cap returns the number of slots.
func (a *Allocator[T]) Cap() int { return len(a.gens) }

// Available returns the number of free slots.
func (a *Allocator[T]) Available() int {
	a.lock()
	defer a.unlock()
	return a.free.Len()
}

// HasAvailable reports whether Allocate would succeed.
func (a *Allocator[T]) HasAvailable() bool {
	a.lock()
	defer a.unlock()
	return !a.free.IsEmpty()
}

// InUse returns the number of slots currently handed out.
func (a *Allocator[T]) InUse() int {
	return int(a.allocations.Load() - a.releases.Load())
}

// Allocations returns the number of successful allocations so far.
func (a *Allocator[T]) Allocations() uint64 { return uint64(a.allocations.Load()) }

// Releases returns the number of slots returned so far.
func (a *Allocator[T]) Releases() uint64 { return uint64(a.releases.Load()) }

// Allocate takes a free slot, runs the init hook on it and returns the
// owning guard.
//
// Panics with the allocator's exhaustion message if no slot is free. The
// panic value is an error marked with [ErrExhausted].
func (a *Allocator[T]) Allocate() Allocated[T] {
	g, ok := a.take(true)
	if !ok {
		a.exhausted()
	}
	return g
}

// AllocateUninitialized is like Allocate but skips the init hook. The slot
// holds the zero value of T.
func (a *Allocator[T]) AllocateUninitialized() Allocated[T] {
	g, ok := a.take(false)
	if !ok {
		a.exhausted()
	}
	return g
}

// TryAllocate is like Allocate but returns ErrWouldBlock instead of
// panicking when no slot is free. An init hook that panics with an error
// marked [ErrExhausted], because a pool it draws from is empty, also
// yields ErrWouldBlock.
func (a *Allocator[T]) TryAllocate() (Allocated[T], error) {
	g, ok := a.tryTake()
	if !ok {
		return Allocated[T]{}, ErrWouldBlock
	}
	return g, nil
}

// TryAllocateUninitialized is like AllocateUninitialized but returns
// ErrWouldBlock instead of panicking when no slot is free.
func (a *Allocator[T]) TryAllocateUninitialized() (Allocated[T], error) {
	g, ok := a.take(false)
	if !ok {
		return Allocated[T]{}, ErrWouldBlock
	}
	return g, nil
}

// AllocateContext waits for a free slot until ctx is done. It is only
// useful on a shared allocator, where another goroutine can release a slot
// while this one waits.
func (a *Allocator[T]) AllocateContext(ctx context.Context) (Allocated[T], error) {
	backoff := iox.Backoff{}
	for {
		if g, ok := a.tryTake(); ok {
			return g, nil
		}
		if err := ctx.Err(); err != nil {
			return Allocated[T]{}, err
		}
		backoff.Wait()
	}
}

// String returns a debug description of the allocator state.
func (a *Allocator[T]) String() string {
	a.lock()
	defer a.unlock()
	return fmt.Sprintf("Allocator(%s){available: %d, cap: %d, free: %v}",
		a.name, a.free.Len(), a.Cap(), a.free)
}

func (a *Allocator[T]) take(initialize bool) (Allocated[T], bool) {
	a.lock()
	slot, err := a.free.Remove()
	if err != nil {
		a.unlock()
		return Allocated[T]{}, false
	}
	gen := a.gens[slot]
	a.unlock()

	a.allocations.Add(1)
	if initialize && a.init != nil {
		defer func() {
			if r := recover(); r != nil {
				a.restore(slot)
				panic(r)
			}
		}()
		a.init(&a.slots[slot])
	}
	return Allocated[T]{pool: a, slot: slot, gen: gen}, true
}

// tryTake is take(true) with nested exhaustion in the init hook reported
// as no slot.
func (a *Allocator[T]) tryTake() (g Allocated[T], ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if err, isErr := r.(error); isErr && errors.Is(err, ErrExhausted) {
				g, ok = Allocated[T]{}, false
				return
			}
			panic(r)
		}
	}()
	return a.take(true)
}

// restore returns a slot whose init hook panicked. No guard was issued for
// it, so its generation stays as is.
func (a *Allocator[T]) restore(slot int) {
	var zero T
	a.slots[slot] = zero
	a.lock()
	err := a.free.Add(slot)
	a.unlock()
	a.allocations.Add(-1)
	if err != nil {
		a.logger.Error("free list overflow", "pool", a.name, "slot", slot)
	}
	a.logger.Warn("init hook failed", "pool", a.name, "slot", slot)
}

// deallocate returns slot to the free list if gen is still current.
// It reports false for a stale generation.
func (a *Allocator[T]) deallocate(slot int, gen uint32) bool {
	a.lock()
	if a.gens[slot] != gen {
		a.unlock()
		return false
	}
	a.gens[slot]++
	a.unlock()

	if a.release != nil {
		a.release(&a.slots[slot])
	}
	var zero T
	a.slots[slot] = zero

	a.lock()
	err := a.free.Add(slot)
	a.unlock()
	if err != nil {
		a.logger.Error("free list overflow", "pool", a.name, "slot", slot)
		fixed.Raise(a.deallocMsg, ErrCorrupted)
	}
	a.releases.Add(1)
	return true
}

func (a *Allocator[T]) current(slot int, gen uint32) bool {
	a.lock()
	defer a.unlock()
	return a.gens[slot] == gen
}

func (a *Allocator[T]) exhausted() {
	a.logger.Error("pool exhausted", "pool", a.name, "cap", a.Cap())
	fixed.Raise(a.allocMsg, ErrExhausted)
}

func (a *Allocator[T]) lock() {
	if a.mu != nil {
		a.mu.Lock()
	}
}

func (a *Allocator[T]) unlock() {
	if a.mu != nil {
		a.mu.Unlock()
	}
}
