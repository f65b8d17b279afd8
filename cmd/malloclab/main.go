// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command malloclab drives a Heap with a randomized allocate/free/
// reallocate workload, reporting throughput and optionally verifying
// heap invariants as it runs.
package main

import (
	"flag"
	"log"
	"math/rand"
	"runtime"
	"time"

	malloclab "github.com/Dorvin/malloclab"
)

var (
	nops    = flag.Int("n", 1000000, "number of allocate/free/realloc operations to run")
	maxSize = flag.Int("max", 4096, "maximum single allocation size in bytes")
	live    = flag.Int("live", 4096, "target number of simultaneously live blocks")
	seed    = flag.Int64("seed", 1, "rng seed")
	useMmap = flag.Bool("mmap", false, "back the heap with an anonymous mmap region instead of a plain slice")
	check   = flag.Bool("check", false, "run Check() after every operation (slow)")

	secs = time.Tick(time.Second)
)

func newRegion() malloclab.Region {
	if *useMmap {
		return malloclab.NewMmapRegion()
	}
	return malloclab.NewMemRegion()
}

func poll(ops, allocs, frees int) {
	select {
	case <-secs:
		log.Printf("ops=%d allocs=%d frees=%d live-target=%d", ops, allocs, frees, *live)
	default:
	}
}

func main() {
	flag.Parse()

	region := newRegion()
	h, err := malloclab.New(region)
	if err != nil {
		log.Fatal(err)
	}

	if c, ok := region.(interface{ Close() error }); ok {
		defer c.Close()
	}

	rng := rand.New(rand.NewSource(*seed))
	var allocated []int64
	var allocs, frees int

	runtime.GC()
	t0 := time.Now()

	for i := 0; i < *nops; i++ {
		poll(i, allocs, frees)

		switch {
		case len(allocated) < *live && (len(allocated) == 0 || rng.Intn(2) == 0):
			size := int64(rng.Intn(*maxSize) + 1)
			p, err := h.Allocate(size)
			if err != nil {
				log.Fatal(err)
			}
			if p != 0 {
				allocated = append(allocated, p)
				allocs++
			}
		case rng.Intn(4) == 0:
			idx := rng.Intn(len(allocated))
			size := int64(rng.Intn(*maxSize) + 1)
			np, err := h.Reallocate(allocated[idx], size)
			if err != nil {
				log.Fatal(err)
			}
			allocated[idx] = np
		default:
			idx := rng.Intn(len(allocated))
			h.Free(allocated[idx])
			allocated[idx] = allocated[len(allocated)-1]
			allocated = allocated[:len(allocated)-1]
			frees++
		}

		if *check {
			if _, err := h.Check(); err != nil {
				log.Fatalf("invariant violated after %d ops: %v", i, err)
			}
		}
	}

	d := time.Since(t0)
	stats, err := h.Check()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("done: %d ops in %s (%d allocs, %d frees)", *nops, d, allocs, frees)
	log.Printf("final: allocBlocks=%d freeBlocks=%d allocBytes=%d freeBytes=%d",
		stats.AllocBlocks, stats.FreeBlocks, stats.AllocBytes, stats.FreeBytes)
}
