// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixed

import (
	"code.hybscloud.com/iox"
	"github.com/cockroachdb/errors"
)

// ErrWouldBlock indicates the operation cannot proceed without violating
// the container's capacity.
//
// For Add, Peek and Remove variants:
//
//	Add:          the container is full
//	Peek, Remove: the container is empty
//
// ErrWouldBlock is a control flow signal, not a failure. Callers that treat
// a full or empty container as an expected condition use the error-returning
// variants; callers that treat it as a programming error use the OrPanic
// variants instead.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err, possibly wrapped, is a capacity signal
// of an error-returning variant rather than a failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether a call that returned err left the container
// consistent: err is nil or a capacity signal. A drain loop can stop on the
// first result for which it returns false.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// Raise panics with an error whose message is exactly msg and which is
// marked with kind, so that a recovering caller can classify the panic
// with [errors.Is]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, fixed.ErrWouldBlock) {
//	        // capacity violation
//	    }
//	}()
func Raise(msg string, kind error) {
	panic(errors.Mark(errors.New(msg), kind))
}
