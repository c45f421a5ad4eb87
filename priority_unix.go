// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package ksmooth

import "golang.org/x/sys/unix"

// lowerProcessPriority makes a best-effort attempt to lower this process's
// scheduling priority by niceIncrement, the POSIX analogue of the
// reference implementation's SetPriorityClass(BELOW_NORMAL_PRIORITY_CLASS)
// call: a long-running CPU-bound batch search shouldn't starve the rest of
// the machine by default. Failure is not fatal -- an unprivileged process
// lowering (not raising) its own niceness should always be permitted, but
// sandboxes and containers vary, so errors are swallowed here exactly as
// the reference's use of SetPriorityClass is not checked for success.
func lowerProcessPriority(niceIncrement int) {
	if niceIncrement == 0 {
		return
	}
	cur, err := unix.Getpriority(unix.PRIO_PROCESS, 0)
	if err != nil {
		return
	}
	// Getpriority returns 20-nice per the Linux syscall convention; undo
	// that before adding the increment and handing it to Setpriority.
	_ = unix.Setpriority(unix.PRIO_PROCESS, 0, (20-cur)+niceIncrement)
}
