// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

import (
	"log/slog"

	"code.hybscloud.com/fixed"
	"code.hybscloud.com/fixed/pool"
)

// ticketBits is the width of the FIFO ticket in a ready queue key.
const ticketBits = 48

// queued is a process guard waiting in one of the scheduler queues.
type queued struct {
	proc pool.Allocated[Process]
	key  uint64
}

func queuedKey(q queued) uint64 { return q.key }

// Scheduler is a preemptive multi-level priority scheduler.
//
// Ready processes wait in a [fixed.PriorityQueue] keyed by priority and
// then by arrival, so that processes of equal priority run round-robin.
// Sleeping processes wait in a second queue keyed by earliest wakeup.
// The scheduler owns the guard of every live process and releases it on
// Exit.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	cfg     Config
	procs   *pool.Allocator[Process]
	ready   *fixed.PriorityQueue[queued]
	sleep   *fixed.PriorityQueue[queued]
	current pool.Allocated[Process]
	now     uint64
	ticket  uint64
	nextPID int16
	logger  *slog.Logger
}

// NewScheduler creates a scheduler that spawns processes from procs.
func NewScheduler(cfg Config, procs *pool.Allocator[Process]) *Scheduler {
	n := procs.Cap()
	order := fixed.ByKey(queuedKey)
	return &Scheduler{
		cfg:     cfg,
		procs:   procs,
		ready:   fixed.NewPriorityQueue(make([]queued, n), 0, order),
		sleep:   fixed.NewPriorityQueue(make([]queued, n), 0, order),
		nextPID: PIDInit,
		logger:  cfg.logger(),
	}
}

// Now returns the number of ticks since the scheduler was created.
func (s *Scheduler) Now() uint64 { return s.now }

// Current returns the running process, or nil if the CPU is idle.
func (s *Scheduler) Current() *Process {
	if !s.current.Valid() {
		return nil
	}
	return s.current.Get()
}

// Ready returns the number of processes waiting to run.
func (s *Scheduler) Ready() int { return s.ready.Len() }

// Sleeping returns the number of sleeping processes.
func (s *Scheduler) Sleeping() int { return s.sleep.Len() }

// Spawn creates a process at prio starting at entry and makes it ready.
// The parent is the current process, if any.
//
// Panics with the process pool's message when no process slot is free.
func (s *Scheduler) Spawn(prio Prio, entry uint64) int16 {
	return s.spawn(s.procs.Allocate(), prio, entry)
}

// TrySpawn is like Spawn but returns ErrWouldBlock when no process slot or
// no stack is free.
func (s *Scheduler) TrySpawn(prio Prio, entry uint64) (int16, error) {
	g, err := s.procs.TryAllocate()
	if err != nil {
		return 0, err
	}
	return s.spawn(g, prio, entry), nil
}

func (s *Scheduler) spawn(g pool.Allocated[Process], prio Prio, entry uint64) int16 {
	p := g.Get()
	p.PID = s.nextPID
	s.nextPID++
	if cur := s.Current(); cur != nil {
		p.PPID = cur.PID
	}
	p.Prio = prio
	p.State = StateNew
	p.SetEntry(entry)
	s.logger.Debug("spawn", "pid", p.PID, "ppid", p.PPID, "prio", p.Prio)
	s.Schedule(g)
	return p.PID
}

// Schedule makes the process ready to run. An out-of-range priority is
// lowered to PrioUserLow.
func (s *Scheduler) Schedule(g pool.Allocated[Process]) {
	p := g.Get()
	if p.Prio >= NPrios {
		p.Prio = PrioUserLow
	}
	p.State = StateReady
	// Higher priority first, then lower ticket first.
	key := uint64(0xff-p.Prio)<<ticketBits | (1<<ticketBits - 1 - s.ticket&(1<<ticketBits-1))
	s.ticket++
	s.ready.AddOrPanic(queued{proc: g, key: key}, "ready queue overflow")
}

// Dispatch gives the CPU to the highest-priority ready process and returns
// it.
//
// Panics if a process is still running, or if no process is ready.
func (s *Scheduler) Dispatch() *Process {
	if s.current.Valid() {
		panic("kernel: dispatch with a running process")
	}
	q := s.ready.RemoveAndZeroOrPanic("no ready processes")
	s.current = q.proc
	p := s.current.Get()
	p.State = StateRunning
	p.Quantum = p.DefaultQuantum
	s.logger.Debug("dispatch", "pid", p.PID, "prio", p.Prio)
	return p
}

// Tick advances the clock by one tick. Sleepers whose wakeup time has come
// are made ready. The current process loses one quantum unit and is
// preempted when its quantum runs out. An idle CPU picks up a ready
// process.
func (s *Scheduler) Tick() {
	s.now++
	for !s.sleep.IsEmpty() {
		q := s.sleep.PeekOrPanic("sleep queue empty")
		if q.proc.Get().Wakeup > s.now {
			break
		}
		s.sleep.RemoveAndZeroOrPanic("sleep queue empty")
		s.logger.Debug("wakeup", "pid", q.proc.Get().PID, "now", s.now)
		s.Schedule(q.proc)
	}

	if !s.current.Valid() {
		s.dispatchIfReady()
		return
	}
	p := s.current.Get()
	if p.Quantum > 0 {
		p.Quantum--
	}
	if p.Quantum < 1 {
		s.logger.Debug("preempt", "pid", p.PID)
		s.Schedule(s.current.Move())
		s.Dispatch()
	}
}

// Sleep suspends the current process for ticks ticks and dispatches the
// next ready process. Sleep(0) only yields the CPU.
//
// Panics if no process is running.
func (s *Scheduler) Sleep(ticks uint64) {
	if !s.current.Valid() {
		panic("kernel: sleep without a current process")
	}
	g := s.current.Move()
	if ticks == 0 {
		s.Schedule(g)
	} else {
		p := g.Get()
		p.Wakeup = s.now + ticks
		p.State = StateSleeping
		s.sleep.AddOrPanic(queued{proc: g, key: ^p.Wakeup}, "sleep queue overflow")
		s.logger.Debug("sleep", "pid", p.PID, "wakeup", p.Wakeup)
	}
	s.dispatchIfReady()
}

// Exit terminates the current process, returns its slot and stack to their
// pools and dispatches the next ready process.
func (s *Scheduler) Exit() {
	if s.current.Valid() {
		s.logger.Debug("exit", "pid", s.current.Get().PID)
	}
	s.current.Release()
	s.dispatchIfReady()
}

func (s *Scheduler) dispatchIfReady() {
	if !s.ready.IsEmpty() {
		s.Dispatch()
	}
}
