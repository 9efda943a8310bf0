// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

import "log/slog"

const (
	// MaxProcs is the default number of process slots, and of stacks.
	MaxProcs = 25
	// DefaultQuantum is the default number of ticks a process runs before
	// it is preempted.
	DefaultQuantum = 10
	// PIDInit is the PID of the first process spawned.
	PIDInit = 1
)

// Config configures a [Scheduler] and the pools behind it.
type Config struct {
	// MaxProcs bounds the number of live processes.
	MaxProcs int
	// Quantum is the number of ticks a dispatched process may run.
	Quantum uint8
	// ExitHook is the return address pushed below a fresh context. A
	// process whose entry point returns lands there.
	ExitHook uint64
	// Logger receives scheduling events at Debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration of the default pools.
func DefaultConfig() Config {
	return Config{
		MaxProcs: MaxProcs,
		Quantum:  DefaultQuantum,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
