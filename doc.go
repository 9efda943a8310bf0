// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixed provides fixed-capacity containers over caller-supplied
// buffers.
//
// The containers never allocate and never grow. Each one is laid over a
// backing slice supplied at construction time (typically a statically sized
// array) and owns exclusive logical access to it for its lifetime:
//
//   - Stack: LIFO, grows from the end of the buffer towards index 0
//   - Ring: FIFO circular buffer, any capacity >= 1
//   - PriorityQueue: binary max-heap, greatest priority first
//
// # Quick Start
//
//	var buf [64]int
//	s := fixed.NewStack(buf[:], 0)
//	s.AddOrPanic(1, "stack overflow")
//	v := s.RemoveOrPanic("stack underflow")
//
//	q := fixed.NewRing(make([]Event, 1024), 0)
//	if err := q.Add(ev); fixed.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	pq := fixed.NewPriorityQueue(make([]Job, 32), 0, fixed.ByPriority[Job, uint8]())
//
// # Layering
//
// Every container implements the small, unchecked [Core] interface:
// length and capacity queries, peek, remove, add, bulk forget, bulk extend,
// clear and a compacting move. [Container] implements the checked API once
// in terms of Core, and every concrete container embeds it. A new container
// only has to implement Core to inherit the full API through [Wrap].
//
// # Error Handling
//
// Capacity violations (add to a full container, peek or remove from an
// empty one) come in two flavors:
//
//	q.Add(v)                  // returns ErrWouldBlock when full
//	q.AddOrPanic(v, "msg")    // panics with "msg" when full
//
// ErrWouldBlock is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency. The OrPanic variants treat the violation as a programming
// error. The panic value is an error whose message is exactly the caller's
// text, marked with ErrWouldBlock via [github.com/cockroachdb/errors]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, fixed.ErrWouldBlock) {
//	        // capacity violation
//	    }
//	}()
//
// # Bulk Operations
//
// Forget removes up to n elements in one pass and is observably the same as
// n Remove calls: the evicted elements and their order match. Extend copies
// as many elements as fit and is observably the same as repeated Add calls.
// The Ring implements both with at most two copies across the wraparound
// point.
//
// # Inspection
//
// Values, String and All walk the elements in inspection order: top first
// for Stack, oldest first for Ring, highest priority first for
// PriorityQueue. For PriorityQueue this heapsorts the buffer in place,
// which costs O(n log n) and must stay off hot paths.
//
// # Thread Safety
//
// None of the containers are safe for concurrent use. They assume a single
// owner, as in a single-core, interrupt-disabled kernel context. Callers
// sharing a container across goroutines must provide mutual exclusion.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [github.com/cockroachdb/errors] for classified panic values.
package fixed
