// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package ksmooth

// lowerProcessPriority is a no-op on platforms without a POSIX niceness
// model (Windows, js/wasm, plan9, wasip1, ...). The "unix" / "!unix" tag
// pair covers every GOOS with no gap, unlike a bare "windows" tag. The
// reference implementation's Windows path uses
// SetPriorityClass/SetThreadPriority instead; wiring those requires
// golang.org/x/sys/windows, which is out of scope for this module's
// primary deployment target.
func lowerProcessPriority(niceIncrement int) {}
