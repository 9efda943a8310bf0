// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kernel composes the fixed containers and pools into the process
// layer of a small kernel: register contexts, pooled stacks, process
// control blocks and a priority scheduler.
//
// Process control blocks and stacks come from fixed-size pools. A freshly
// allocated process already owns a stack with a context frame pushed onto
// it, so dispatching it only needs the saved stack pointer.
//
//	stacks := kernel.NewStack64Pool(kernel.MaxProcs)
//	procs := kernel.NewProcessPool(kernel.DefaultConfig(), stacks)
//	s := kernel.NewScheduler(kernel.DefaultConfig(), procs)
//
//	s.Spawn(kernel.PrioSystem, entry)
//	s.Dispatch()
//	for {
//	    s.Tick()
//	}
//
// The package level pools ([Stack64Pool], [Stack32Pool], [ProcessPool])
// are built on first use for code that cannot thread the allocators
// through.
package kernel
