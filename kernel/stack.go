// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

import "code.hybscloud.com/fixed/pool"

// StackSize is the number of machine words in a process stack.
const StackSize = 1024

// Stack32 is the runtime stack of a 32-bit process.
type Stack32 struct{ Data [StackSize]uint32 }

// Stack64 is the runtime stack of a 64-bit process.
type Stack64 struct{ Data [StackSize]uint64 }

var (
	// Stack64Pool returns the process-wide pool of MaxProcs 64-bit stacks,
	// building it on first use.
	Stack64Pool = stack64Pool(MaxProcs).Lazy()

	// Stack32Pool returns the process-wide pool of MaxProcs 32-bit stacks,
	// building it on first use.
	Stack32Pool = stack32Pool(MaxProcs).Lazy()
)

// NewStack64Pool builds a private pool of n 64-bit stacks.
func NewStack64Pool(n int) *pool.Allocator[Stack64] { return stack64Pool(n).Build() }

// NewStack32Pool builds a private pool of n 32-bit stacks.
func NewStack32Pool(n int) *pool.Allocator[Stack32] { return stack32Pool(n).Build() }

func stack64Pool(n int) *pool.Builder[Stack64] {
	return pool.New[Stack64](n).
		Named("stack64").
		Messages("unable to allocate 64-bit stack", "unable to deallocate 64-bit stack")
}

func stack32Pool(n int) *pool.Builder[Stack32] {
	return pool.New[Stack32](n).
		Named("stack32").
		Messages("unable to allocate 32-bit stack", "unable to deallocate 32-bit stack")
}
