// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides a fixed-capacity object pool over a static array.
//
// An [Allocator] owns an array of T and a free list of slot indices kept in
// a [fixed.Ring]. Allocate hands out one slot wrapped in an [Allocated]
// guard; releasing the guard zeroes the slot and returns it to the free
// list. The pool never grows.
//
// # Quick Start
//
//	procs := pool.New[Process](25).
//	    Messages("too many processes", "process freed twice").
//	    Build()
//
//	g := procs.Allocate()
//	defer g.Release()
//	p := g.Get()
//
// # Failure Policy
//
// Running out of slots is a sizing bug. Allocate panics with the configured
// message, marked with [ErrExhausted]; TryAllocate returns [ErrWouldBlock]
// for callers that expect exhaustion. A free list that overflows on release
// means the allocator's own bookkeeping is broken and always panics, marked
// with [ErrCorrupted].
//
// # Guards
//
// A guard releases its slot at most once. Release on a released guard, a
// moved-from guard or a stale copy returns false and touches nothing.
//
// # Singletons
//
// Pass allocators explicitly where possible. For a process-wide pool per
// type, [Builder.Lazy] returns an accessor that builds the allocator on
// first use:
//
//	var Procs = pool.New[Process](25).Lazy()
//
//	g := Procs().Allocate()
//
// # Thread Safety
//
// An allocator is single-owner by default and takes no locks. Build it with
// [Builder.Shared] to guard every operation with a spin lock. Statistics
// are atomic either way, so a [Collector] may scrape from any goroutine.
package pool
