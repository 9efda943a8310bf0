// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spinlock provides a minimal test-and-test-and-set lock.
//
// The lock never parks the goroutine. It is intended for critical sections
// of a few dozen instructions, such as taking an index off a free list.
package spinlock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Lock is a spin lock. The zero value is unlocked.
// Lock implements [sync.Locker].
type Lock struct {
	_     [0]func() // not comparable
	state atomix.Uint64
}

// Lock acquires the lock, spinning until it is available.
func (l *Lock) Lock() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *Lock) TryLock() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases the lock.
// Unlocking an unlocked Lock is a bug and panics.
func (l *Lock) Unlock() {
	if l.state.LoadAcquire() == 0 {
		panic("spinlock: unlock of unlocked lock")
	}
	l.state.StoreRelease(0)
}
