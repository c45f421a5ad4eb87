// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Run drives the outer k=1..Config.K loop described in §4.7: for each k
// it asks an EpochController for m(k), starting the next k's search at
// the previous k's answer since m(k) is non-decreasing in k (P5), and
// reports every plateau point through w.
//
// ctx is checked before each k's search starts (never mid-epoch, per
// §5's cancellation policy); a search already in progress inside FindM
// is not interrupted. A cancelled context stops the loop and returns
// ctx.Err() wrapped with the k that would have been searched next.
func Run(ctx context.Context, cfg *Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	lowerProcessPriority(cfg.NiceIncrement)

	controller := NewEpochController(cfg.Threads)
	defer controller.Close()

	canceler := newBatchCanceler(ctx)
	reporter := NewReporter(w, cfg.Verbose)
	if err := reporter.Header(); err != nil {
		return errors.Wrap(err, "report header")
	}

	m := uint64(0)
	for k := uint32(1); k <= cfg.K; k++ {
		if canceler.Check() {
			return wrapKError("run", k, canceler.Err())
		}

		next, err := controller.FindM(k, m, cfg.TileLen, cfg.BatchTiles)
		if err != nil {
			return errors.Wrapf(err, "find_m(k=%d)", k)
		}
		m = next

		if err := reporter.Row(k, m); err != nil {
			return errors.Wrap(err, "report row")
		}
	}
	return nil
}
