// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"slices"
	"strings"
)

// GDT selectors loaded into a fresh context.
const (
	SelectorCode  = 0x10
	SelectorData  = 0x18
	SelectorStack = 0x20
)

// Number of machine words in a saved context.
const (
	Context32Words = 18
	Context64Words = 26
)

// Context32 is the register save area of a 32-bit process, in the order the
// interrupt entry code lays it out from the lowest address up.
type Context32 struct {
	SS, GS, FS, ES, DS            uint32
	EDI, ESI, EBP, ESP            uint32
	EBX, EDX, ECX, EAX            uint32
	Vector, Code, EIP, CS, EFlags uint32
}

// Context64 is the register save area of a 64-bit process, in the order the
// interrupt entry code lays it out from the lowest address up.
type Context64 struct {
	SS, GS, FS, ES, DS                   uint64
	R15, R14, R13, R12, R11, R10, R9, R8 uint64
	RDI, RSI, RBP, RSP                   uint64
	RBX, RDX, RCX, RAX                   uint64
	Vector, Code, RIP, CS, RFlags        uint64
}

// NewContext32 returns a context with the kernel selectors and default
// flags loaded and every general-purpose register zero.
func NewContext32() Context32 {
	return Context32{
		SS:     SelectorStack,
		GS:     SelectorData,
		FS:     SelectorData,
		ES:     SelectorData,
		DS:     SelectorData,
		CS:     SelectorCode,
		EFlags: uint32(FlagsDefault),
	}
}

// NewContext64 is the 64-bit counterpart of NewContext32.
func NewContext64() Context64 {
	return Context64{
		SS:     SelectorStack,
		GS:     SelectorData,
		FS:     SelectorData,
		ES:     SelectorData,
		DS:     SelectorData,
		CS:     SelectorCode,
		RFlags: FlagsDefault,
	}
}

// Narrow truncates every register to 32 bits. R8 to R15 have no 32-bit
// counterpart and are dropped.
func (c Context64) Narrow() Context32 {
	return Context32{
		SS: uint32(c.SS), GS: uint32(c.GS), FS: uint32(c.FS), ES: uint32(c.ES), DS: uint32(c.DS),
		EDI: uint32(c.RDI), ESI: uint32(c.RSI), EBP: uint32(c.RBP), ESP: uint32(c.RSP),
		EBX: uint32(c.RBX), EDX: uint32(c.RDX), ECX: uint32(c.RCX), EAX: uint32(c.RAX),
		Vector: uint32(c.Vector), Code: uint32(c.Code), EIP: uint32(c.RIP), CS: uint32(c.CS),
		EFlags: uint32(c.RFlags),
	}
}

func (c *Context32) fields() [Context32Words]*uint32 {
	return [...]*uint32{
		&c.SS, &c.GS, &c.FS, &c.ES, &c.DS,
		&c.EDI, &c.ESI, &c.EBP, &c.ESP,
		&c.EBX, &c.EDX, &c.ECX, &c.EAX,
		&c.Vector, &c.Code, &c.EIP, &c.CS, &c.EFlags,
	}
}

func (c *Context64) fields() [Context64Words]*uint64 {
	return [...]*uint64{
		&c.SS, &c.GS, &c.FS, &c.ES, &c.DS,
		&c.R15, &c.R14, &c.R13, &c.R12, &c.R11, &c.R10, &c.R9, &c.R8,
		&c.RDI, &c.RSI, &c.RBP, &c.RSP,
		&c.RBX, &c.RDX, &c.RCX, &c.RAX,
		&c.Vector, &c.Code, &c.RIP, &c.CS, &c.RFlags,
	}
}

// Words flattens the context most significant word first: EFlags leads and
// SS comes last. Pushing the words in this order onto a downward-growing
// stack leaves the context laid out in field order from the new top.
func (c Context32) Words() [Context32Words]uint32 {
	var w [Context32Words]uint32
	for i, p := range c.fields() {
		w[i] = *p
	}
	slices.Reverse(w[:])
	return w
}

// Words is the 64-bit counterpart of [Context32.Words].
func (c Context64) Words() [Context64Words]uint64 {
	var w [Context64Words]uint64
	for i, p := range c.fields() {
		w[i] = *p
	}
	slices.Reverse(w[:])
	return w
}

// Context64FromWords is the inverse of [Context64.Words].
func Context64FromWords(w [Context64Words]uint64) Context64 {
	slices.Reverse(w[:])
	return context64FromFrame(w[:])
}

// context64FromFrame reads a context saved in field order, as found on a
// stack at the saved stack pointer.
func context64FromFrame(frame []uint64) Context64 {
	var c Context64
	for i, p := range c.fields() {
		*p = frame[i]
	}
	return c
}

// storeFrame writes c in field order to frame.
func (c Context64) storeFrame(frame []uint64) {
	for i, p := range c.fields() {
		frame[i] = *p
	}
}

var context32Names = [Context32Words]string{
	"ss", "gs", "fs", "es", "ds", "edi", "esi", "ebp", "esp",
	"ebx", "edx", "ecx", "eax", "vec", "cod", "eip", "cs", "efl",
}

var context64Names = [Context64Words]string{
	"ss", "gs", "fs", "es", "ds", "r15", "r14", "r13", "r12", "r11", "r10", "r9", "r8",
	"rdi", "rsi", "rbp", "rsp", "rbx", "rdx", "rcx", "rax", "vec", "cod", "rip", "cs", "rfl",
}

// String dumps the registers in hex, four per line.
func (c Context32) String() string {
	var b strings.Builder
	for i, p := range c.fields() {
		sep := " "
		if i%4 == 3 {
			sep = "\n"
		}
		fmt.Fprintf(&b, "%3s %08x%s", context32Names[i], *p, sep)
	}
	return strings.TrimRight(b.String(), " \n")
}

// String dumps the registers in hex, four per line.
func (c Context64) String() string {
	var b strings.Builder
	for i, p := range c.fields() {
		sep := " "
		if i%4 == 3 {
			sep = "\n"
		}
		fmt.Fprintf(&b, "%3s %016x%s", context64Names[i], *p, sep)
	}
	return strings.TrimRight(b.String(), " \n")
}
