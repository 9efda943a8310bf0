// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"sync"

	"code.hybscloud.com/fixed"
	"code.hybscloud.com/fixed/pool"
)

// State is the scheduling state of a process.
type State uint8

const (
	StateFree State = iota
	StateNew
	StateReady
	StateRunning
	StateSleeping
	StateBlocked
)

var stateNames = [...]string{"free", "new", "ready", "running", "sleeping", "blocked"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Prio is a scheduling priority. Lower values are served first.
type Prio uint8

const (
	PrioSystem Prio = iota
	PrioUserHigh
	PrioUserStd
	PrioUserLow

	// NPrios is the number of valid priorities.
	NPrios = 4
	// PrioDefault is the priority of processes that do not ask for one.
	PrioDefault = PrioUserStd
)

// Process is a process control block.
//
// Every process owns a 64-bit stack from the stack pool. The saved register
// context lives on that stack at the saved stack pointer, below the exit
// hook return address and a terminating zero word:
//
//	Data[SP()]                 context, SS first
//	...
//	Data[SP()+Context64Words]  exit hook
//	Data[StackSize-1]          0
type Process struct {
	stack pool.Allocated[Stack64]
	sp    int

	Wakeup         uint64
	PID, PPID      int16
	Prio           Prio
	State          State
	Quantum        uint8
	DefaultQuantum uint8
}

// NewProcessPool builds an allocator of cfg.MaxProcs process control
// blocks. Every allocated process gets a stack from stacks with a fresh
// context frame on it; releasing the process returns the stack.
func NewProcessPool(cfg Config, stacks *pool.Allocator[Stack64]) *pool.Allocator[Process] {
	return processPool(cfg, stacks).Build()
}

// ProcessPool returns the process-wide pool of MaxProcs process control
// blocks backed by [Stack64Pool], building it on first use.
var ProcessPool = sync.OnceValue(func() *pool.Allocator[Process] {
	return NewProcessPool(DefaultConfig(), Stack64Pool())
})

func processPool(cfg Config, stacks *pool.Allocator[Stack64]) *pool.Builder[Process] {
	return pool.New[Process](cfg.MaxProcs).
		Named("process").
		Messages("unable to allocate PCB", "unable to deallocate PCB").
		Logger(cfg.Logger).
		Init(func(p *Process) {
			p.setup(stacks.AllocateUninitialized(), cfg.ExitHook)
			p.DefaultQuantum = cfg.Quantum
		}).
		Release(func(p *Process) { p.stack.Release() })
}

// setup takes ownership of stack and pushes the initial frame.
func (p *Process) setup(stack pool.Allocated[Stack64], exitHook uint64) {
	p.stack = stack
	s := fixed.NewStack(p.stack.Get().Data[:], 0)
	s.AddOrPanic(0, "stack too small for initial frame")
	s.AddOrPanic(exitHook, "stack too small for initial frame")
	w := NewContext64().Words()
	s.ExtendOrPanic(w[:], "stack too small for initial frame")
	p.sp = s.Top()
}

// SP returns the index of the saved context in the stack words.
func (p *Process) SP() int { return p.sp }

// Stack returns the process stack words, or nil if the process has none.
func (p *Process) Stack() []uint64 {
	if !p.stack.Valid() {
		return nil
	}
	return p.stack.Get().Data[:]
}

// Context returns a copy of the saved register context.
func (p *Process) Context() Context64 {
	return context64FromFrame(p.frame())
}

// SetContext overwrites the saved register context.
func (p *Process) SetContext(c Context64) {
	c.storeFrame(p.frame())
}

// SetEntry points the saved instruction pointer at entry.
func (p *Process) SetEntry(entry uint64) {
	c := p.Context()
	c.RIP = entry
	p.SetContext(c)
}

func (p *Process) frame() []uint64 {
	return p.stack.Get().Data[p.sp : p.sp+Context64Words]
}

func (p *Process) String() string {
	return fmt.Sprintf("Process{pid: %d, ppid: %d, prio: %d, state: %s, quantum: %d/%d}",
		p.PID, p.PPID, p.Prio, p.State, p.Quantum, p.DefaultQuantum)
}

// BuildFrame32 lays out the initial frame of a 32-bit process on stack:
// args with args[0] nearest the top, the exit hook return address, then
// ctx. It returns the index of the saved context.
//
// Panics if the frame does not fit.
func BuildFrame32(stack *Stack32, ctx Context32, exitHook uint32, args ...uint32) int {
	s := fixed.NewStack(stack.Data[:], 0)
	s.AddOrPanic(0, "stack too small for initial frame")
	for i := len(args) - 1; i >= 0; i-- {
		s.AddOrPanic(args[i], "stack too small for initial frame")
	}
	s.AddOrPanic(exitHook, "stack too small for initial frame")
	w := ctx.Words()
	s.ExtendOrPanic(w[:], "stack too small for initial frame")
	return s.Top()
}
