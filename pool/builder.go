// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"fmt"
	"log/slog"
	"sync"

	"code.hybscloud.com/fixed"
	"code.hybscloud.com/fixed/internal/spinlock"
)

// Options configures allocator creation.
type Options[T any] struct {
	name       string
	capacity   int
	slots      []T
	free       []int
	init       func(*T)
	release    func(*T)
	allocMsg   string
	deallocMsg string
	logger     *slog.Logger
	shared     bool
}

// Builder creates allocators with fluent configuration.
//
// Example:
//
//	procs := pool.New[Process](25).
//	    Named("process").
//	    Messages("too many processes", "process freed twice").
//	    Build()
//
//	// Lazily built, process-wide
//	var procs = pool.New[Process](25).Lazy()
type Builder[T any] struct {
	opts Options[T]
}

// New creates an allocator builder for capacity slots of T.
// Panics if capacity < 1.
func New[T any](capacity int) *Builder[T] {
	if capacity < 1 {
		panic("pool: capacity must be >= 1")
	}
	return &Builder[T]{opts: Options[T]{
		name:       fmt.Sprintf("%T", *new(T)),
		capacity:   capacity,
		allocMsg:   defaultAllocMsg,
		deallocMsg: defaultDeallocMsg,
	}}
}

// Named sets the name used in logs, metrics and String.
// The default is the Go type name of T.
func (b *Builder[T]) Named(name string) *Builder[T] {
	b.opts.name = name
	return b
}

// Init sets the hook run on every slot handed out by Allocate.
// It replaces the default [Initializer] hook.
func (b *Builder[T]) Init(f func(*T)) *Builder[T] {
	b.opts.init = f
	return b
}

// Release sets the hook run on a slot before it is zeroed and returned.
// Use it to release guards the slot itself holds.
func (b *Builder[T]) Release(f func(*T)) *Builder[T] {
	b.opts.release = f
	return b
}

// Messages sets the panic messages for exhaustion and free list overflow.
func (b *Builder[T]) Messages(alloc, dealloc string) *Builder[T] {
	b.opts.allocMsg = alloc
	b.opts.deallocMsg = dealloc
	return b
}

// Storage supplies the slot array and the free list storage instead of
// allocating them. The capacity becomes min(len(slots), len(free)).
// The allocator owns both slices from Build on.
func (b *Builder[T]) Storage(slots []T, free []int) *Builder[T] {
	b.opts.slots = slots
	b.opts.free = free
	return b
}

// Logger sets the logger. The default discards all records.
func (b *Builder[T]) Logger(l *slog.Logger) *Builder[T] {
	b.opts.logger = l
	return b
}

// Shared makes every allocator operation take a spin lock, so that the
// allocator and its guards may be used from several goroutines.
func (b *Builder[T]) Shared() *Builder[T] {
	b.opts.shared = true
	return b
}

// Build creates the allocator with every slot free.
func (b *Builder[T]) Build() *Allocator[T] {
	o := b.opts
	slots, free := o.slots, o.free
	if slots == nil {
		slots = make([]T, o.capacity)
	}
	if free == nil {
		free = make([]int, o.capacity)
	}
	n := min(len(slots), len(free))
	if n < 1 {
		panic("pool: storage must hold at least one slot")
	}
	slots = slots[:n:n]
	free = free[:n:n]
	for i := range free {
		free[i] = i
	}

	a := &Allocator[T]{
		name:       o.name,
		slots:      slots,
		gens:       make([]uint32, n),
		free:       fixed.NewRing(free, n),
		init:       o.init,
		release:    o.release,
		allocMsg:   o.allocMsg,
		deallocMsg: o.deallocMsg,
		logger:     o.logger,
	}
	if a.init == nil {
		if _, ok := any(&slots[0]).(Initializer); ok {
			a.init = func(p *T) { any(p).(Initializer).Init() }
		}
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	if o.shared {
		a.mu = new(spinlock.Lock)
	}
	return a
}

// Lazy returns a function that builds the allocator on first call and
// returns the same allocator afterwards. The first call may come from any
// goroutine.
func (b *Builder[T]) Lazy() func() *Allocator[T] {
	return Singleton(b)
}

// Singleton returns a function that builds b on first call and returns the
// same allocator on every call.
func Singleton[T any](b *Builder[T]) func() *Allocator[T] {
	return sync.OnceValue(b.Build)
}
