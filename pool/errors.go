// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"code.hybscloud.com/fixed"
	"github.com/cockroachdb/errors"
)

// ErrWouldBlock is returned by the Try variants when no slot is free.
// This is an alias for [fixed.ErrWouldBlock].
var ErrWouldBlock = fixed.ErrWouldBlock

var (
	// ErrExhausted marks the panic raised by Allocate when every slot is
	// in use. It indicates a pool sized too small for its workload.
	ErrExhausted = errors.New("pool: exhausted")

	// ErrCorrupted marks the panic raised when a slot is returned to a free
	// list that is already full, which only happens after a double free or
	// a corrupted free list.
	ErrCorrupted = errors.New("pool: free list corrupted")
)

const (
	defaultAllocMsg   = "pool: allocator exhausted"
	defaultDeallocMsg = "pool: double free or corrupted free list"
)
