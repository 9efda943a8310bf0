// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel_test

import (
	"testing"

	"code.hybscloud.com/fixed/kernel"
	"code.hybscloud.com/fixed/pool"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

const exitHook = 0x7fff_0000

func testConfig(maxProcs int, quantum uint8) kernel.Config {
	cfg := kernel.DefaultConfig()
	cfg.MaxProcs = maxProcs
	cfg.Quantum = quantum
	cfg.ExitHook = exitHook
	return cfg
}

func TestProcessInitialFrame(t *testing.T) {
	stacks := kernel.NewStack64Pool(2)
	procs := kernel.NewProcessPool(testConfig(2, 5), stacks)

	g := procs.Allocate()
	p := g.Get()
	require.Equal(t, 1, stacks.Available())
	require.Equal(t, uint8(5), p.DefaultQuantum)

	words := p.Stack()
	require.Len(t, words, kernel.StackSize)
	require.Equal(t, kernel.StackSize-2-kernel.Context64Words, p.SP())
	require.Equal(t, uint64(0), words[kernel.StackSize-1])
	require.Equal(t, uint64(exitHook), words[kernel.StackSize-2])
	require.Equal(t, uint64(kernel.SelectorStack), words[p.SP()], "ss on top")
	require.Equal(t, kernel.NewContext64(), p.Context())

	p.SetEntry(0x4000)
	require.Equal(t, uint64(0x4000), p.Context().RIP)
	require.Equal(t, uint64(0x4000), words[p.SP()+23])

	require.True(t, g.Release())
	require.Equal(t, 2, stacks.Available())
	require.Nil(t, p.Stack())
}

func TestProcessStackExhaustion(t *testing.T) {
	stacks := kernel.NewStack64Pool(1)
	procs := kernel.NewProcessPool(testConfig(2, 5), stacks)

	g := procs.Allocate()
	defer g.Release()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.Equal(t, "unable to allocate 64-bit stack", err.Error())
		require.True(t, errors.Is(err, pool.ErrExhausted))
	}()
	procs.Allocate()
}

func TestBuildFrame32(t *testing.T) {
	g := kernel.NewStack32Pool(1).Allocate()
	defer g.Release()

	ctx := kernel.NewContext32()
	ctx.EIP = 0x1000
	sp := kernel.BuildFrame32(g.Get(), ctx, 0xfeed, 11, 22)

	data := g.Get().Data[:]
	require.Equal(t, kernel.StackSize-4-kernel.Context32Words, sp)
	require.Equal(t, []uint32{0xfeed, 11, 22, 0}, data[kernel.StackSize-4:])
	require.Equal(t, uint32(kernel.SelectorStack), data[sp])
	require.Equal(t, uint32(0x1000), data[sp+15])
	require.Equal(t, uint32(kernel.FlagsDefault), data[sp+kernel.Context32Words-1])
}

func TestDefaultPools(t *testing.T) {
	procs := kernel.ProcessPool()
	require.Same(t, procs, kernel.ProcessPool())
	require.Equal(t, kernel.MaxProcs, procs.Cap())
	require.Equal(t, kernel.MaxProcs, kernel.Stack32Pool().Cap())

	before := kernel.Stack64Pool().Available()
	g := procs.Allocate()
	require.Equal(t, before-1, kernel.Stack64Pool().Available())
	g.Release()
	require.Equal(t, before, kernel.Stack64Pool().Available())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "sleeping", kernel.StateSleeping.String())
	require.Equal(t, "State(9)", kernel.State(9).String())
}
