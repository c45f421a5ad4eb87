// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import "runtime"

// Default values for the positional and flag arguments described in §6.
const (
	DefaultK          = 200
	DefaultTileLen    = 65536
	DefaultBatchTiles = 128
	DefaultNiceness   = 5
)

// Config holds one fully-validated run configuration: what to search for
// and how to parallelize the search. It is the boundary between CLI/flag
// parsing and the search engine -- every field here has already been
// checked, so nothing downstream needs to re-validate it.
type Config struct {
	K             uint32
	Threads       int
	TileLen       uint32
	BatchTiles    uint64
	Verbose       bool
	NiceIncrement int
}

// NewConfig fills in defaults and clamps Threads to runtime.NumCPU():
// threads <= 0 means all CPUs, the same "0 means auto" convention the
// reference program uses for its thread-count argument, and a larger count
// is reduced to runtime.NumCPU().
func NewConfig(k uint32, threads int, tileLen uint32, batchTiles uint64, verbose bool, niceIncrement int) (*Config, error) {
	c := &Config{
		K:             k,
		Threads:       threads,
		TileLen:       tileLen,
		BatchTiles:    batchTiles,
		Verbose:       verbose,
		NiceIncrement: niceIncrement,
	}
	if c.K == 0 {
		c.K = DefaultK
	}
	if c.TileLen == 0 {
		c.TileLen = DefaultTileLen
	}
	if c.BatchTiles == 0 {
		c.BatchTiles = DefaultBatchTiles
	}
	if n := runtime.NumCPU(); c.Threads <= 0 || c.Threads > n {
		c.Threads = n
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports ErrInvalidConfig for any combination that would make
// the search engine's invariants impossible to uphold.
func (c *Config) Validate() error {
	switch {
	case c.K == 0:
		return wrapError("config", ErrInvalidConfig)
	case c.Threads <= 0:
		return wrapError("config", ErrInvalidConfig)
	case c.TileLen == 0:
		return wrapError("config", ErrInvalidConfig)
	case c.BatchTiles == 0:
		return wrapError("config", ErrInvalidConfig)
	}
	return nil
}
