// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// EpochController owns a fixed pool of long-lived worker goroutines and
// drives them through successive epochs (batches), shrinking the scan
// bound as candidates are found, until some m(k) is located (§4.7).
//
// Workers are started once in NewEpochController and persist across every
// epoch and every k; only the epoch header changes between batches.
type EpochController struct {
	threadCount int
	dispatcher  *dispatcher
	workers     []*worker

	current atomic.Pointer[epoch]
	running sync.WaitGroup
}

// NewEpochController starts threadCount worker goroutines (clamped to
// runtime.NumCPU() when threadCount <= 0) and returns a controller ready
// to drive epochs. Call Close when done to stop the workers.
func NewEpochController(threadCount int) *EpochController {
	if threadCount <= 0 {
		threadCount = runtime.NumCPU()
	}
	c := &EpochController{
		threadCount: threadCount,
		dispatcher:  newDispatcher(threadCount),
		workers:     make([]*worker, threadCount),
	}
	for i := range c.workers {
		c.workers[i] = &worker{tid: i}
	}
	for i := 0; i < threadCount; i++ {
		c.startWorker(i)
	}
	return c
}

// ThreadCount reports the number of worker goroutines in the pool.
func (c *EpochController) ThreadCount() int {
	return c.threadCount
}

func (c *EpochController) startWorker(tid int) {
	c.running.Add(1)
	startCh := c.dispatcher.starts[tid]
	stopCh := c.dispatcher.stop
	w := c.workers[tid]
	go func() {
		defer c.running.Done()
		for {
			select {
			case <-startCh:
				e := c.current.Load()
				w.run(e)
				c.dispatcher.workerDone()
			case <-stopCh:
				return
			}
		}
	}()
}

// runEpoch installs e as the current epoch, wakes every worker exactly
// once, and blocks until all of them have exhausted e.endLimit.
func (c *EpochController) runEpoch(e *epoch) uint64 {
	c.current.Store(e)
	c.dispatcher.beginEpoch(c.threadCount)
	c.dispatcher.waitEpoch()
	return e.bestM.Load()
}

// FindM searches for m(k): the smallest m >= startM such that
// m+1..m+k are all k-smooth, scanning consecutive batches of
// tileLen*batchTiles candidates until one contains a hit (§4.7).
func (c *EpochController) FindM(k uint32, startM uint64, tileLen uint32, batchTiles uint64) (uint64, error) {
	primes, err := PrimesUpTo(k)
	if err != nil {
		return 0, err
	}

	step := uint64(tileLen) * uint64(c.threadCount)
	em, err := buildEpochMath(primes, step)
	if err != nil {
		return 0, wrapKError("epoch math", k, err)
	}

	span := uint64(tileLen) * batchTiles
	if span == 0 {
		span = uint64(tileLen)
	}

	cur := startM
	for {
		end, overflowed := saturatingAddU64(cur, span-1)

		e := newEpoch(k, tileLen, step, cur, end, primes, em)
		best := c.runEpoch(e)
		if best != maxU64 {
			return best, nil
		}

		if overflowed || end == maxU64 {
			return 0, wrapKError("find_m", k, ErrCursorOverflow)
		}
		cur = end + 1
	}
}

// Close stops every worker goroutine and waits for them to exit. The
// controller must not be used afterward.
func (c *EpochController) Close() {
	c.dispatcher.requestStop()
	c.running.Wait()
}

// saturatingAddU64 returns a+b, saturating at maxU64 on overflow, along
// with whether it saturated (mirrors the reference's safe_add_u64).
func saturatingAddU64(a, b uint64) (sum uint64, overflowed bool) {
	sum = a + b
	if sum < a {
		return maxU64, true
	}
	return sum, false
}
