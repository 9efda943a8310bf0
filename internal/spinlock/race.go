// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spinlock

// RaceEnabled is true when the race detector is active.
// Tests use it to skip contention tests: the detector does not see the
// ordering established by atomix operations and reports false positives
// on the memory the lock protects.
const RaceEnabled = true
