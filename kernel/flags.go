// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

// EFLAGS/RFLAGS register bits.
const (
	FlagCF   uint64 = 1 << 0  // carry
	FlagPF   uint64 = 1 << 2  // parity
	FlagAF   uint64 = 1 << 4  // adjust
	FlagZF   uint64 = 1 << 6  // zero
	FlagSF   uint64 = 1 << 7  // sign
	FlagTF   uint64 = 1 << 8  // trap
	FlagIF   uint64 = 1 << 9  // interrupt enable
	FlagDF   uint64 = 1 << 10 // direction
	FlagOF   uint64 = 1 << 11 // overflow
	FlagIOPL uint64 = 3 << 12 // I/O privilege level
	FlagNT   uint64 = 1 << 14 // nested task
	FlagRF   uint64 = 1 << 16 // resume
	FlagVM   uint64 = 1 << 17 // virtual 8086 mode
	FlagAC   uint64 = 1 << 18 // alignment check
	FlagVIF  uint64 = 1 << 19 // virtual interrupt
	FlagVIP  uint64 = 1 << 20 // virtual interrupt pending
	FlagID   uint64 = 1 << 21 // CPUID available

	// FlagsMustBe1 are the bits that always read as 1.
	FlagsMustBe1 uint64 = 1 << 1
	// FlagsMustBe0 are the bits that always read as 0.
	FlagsMustBe0 uint64 = 1<<5 | 1<<15
	// FlagsReserved are the unused bits above ID.
	FlagsReserved uint64 = ^uint64(1<<22 - 1)

	// FlagsDefault is the flags value of a fresh process: interrupts on.
	FlagsDefault = FlagsMustBe1 | FlagIF
)
