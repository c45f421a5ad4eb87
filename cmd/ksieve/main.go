// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Geek0x0/ksmooth"
)

func main() {
	k := flag.Int("k", ksmooth.DefaultK, "search k = 1..K")
	threads := flag.Int("threads", 0, "worker goroutines (0 = runtime.NumCPU())")
	tileLen := flag.Int("tile_len", ksmooth.DefaultTileLen, "candidates per tile")
	batchTiles := flag.Int("batch_tiles", ksmooth.DefaultBatchTiles, "tiles per batch (one epoch)")
	verbose := flag.Bool("v", false, "print every k, not just plateau points")
	niceness := flag.Int("niceness", ksmooth.DefaultNiceness, "nice increment applied to this process (0 disables)")
	flag.Parse()

	positional := []*int{k, threads, tileLen, batchTiles}
	for i, arg := range flag.Args() {
		if i >= len(positional) {
			break
		}
		v, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ksieve: positional argument %d: %v\n", i+1, err)
			flag.Usage()
			os.Exit(2)
		}
		*positional[i] = v
	}

	if *k <= 0 || *tileLen <= 0 || *batchTiles <= 0 {
		fmt.Fprintln(os.Stderr, "ksieve: k, tile_len and batch_tiles must be positive")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := ksmooth.NewConfig(uint32(*k), *threads, uint32(*tileLen), uint64(*batchTiles), *verbose, *niceness)
	if err != nil {
		ksmooth.Warn("ksieve: %v", err)
		os.Exit(2)
	}

	if err := ksmooth.Run(context.Background(), cfg, os.Stdout); err != nil {
		ksmooth.Warn("ksieve: %v", err)
		os.Exit(1)
	}
}
