// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter streams the k, m(k) table described in §6: a header line
// followed by one row per "plateau point" -- a k whose m(k) differs from
// the previous row's -- unless Verbose requests every k.
type Reporter struct {
	w       io.Writer
	verbose bool
	lastM   uint64
	haveRow bool
}

func NewReporter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose}
}

// Header writes the table's column header, mirroring the reference
// program's "; plateau points: k, m" banner.
func (r *Reporter) Header() error {
	_, err := fmt.Fprintln(r.w, "; plateau points: k, m")
	return err
}

// Row reports one (k, m) result, suppressing the row when m equals the
// previous row's m and Verbose is false (§6 "Output").
func (r *Reporter) Row(k uint32, m uint64) error {
	if !r.verbose && r.haveRow && m == r.lastM {
		return nil
	}
	r.lastM = m
	r.haveRow = true
	_, err := fmt.Fprintf(r.w, "%d, %d\n", k, m)
	return err
}

// Warn prints a diagnostic in red through color.Red, which writes to
// standard output. cmd/ksieve uses it for the errors that end the run.
func Warn(format string, args ...interface{}) {
	color.Red(format, args...)
}
