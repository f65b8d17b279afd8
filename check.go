// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import (
	"sort"

	"github.com/cznic/sortutil"
)

// CheckStats summarizes a successful Check pass, mirroring the shape of
// lldb.AllocStats (falloc.go), which Allocator.Verify optionally fills
// in for its callers.
type CheckStats struct {
	TotalBlocks int
	AllocBlocks int
	FreeBlocks  int
	AllocBytes  int64
	FreeBytes   int64
}

// Check walks every block from the first real block to the epilogue,
// verifying spec.md §8's universal invariants, then cross-checks every
// free-list chain against the blocks it found free. It is an optional
// scan for tests (spec.md §2, §7), not part of the hot allocation path —
// the analogue of lldb's pAllocator, which re-verifies after every
// Allocator call in falloc_test.go.
//
// Check returns the first inconsistency found as a *ErrILSEQ. A nil
// error means every invariant in spec.md §8 items 1-6 holds.
func (h *Heap) Check() (CheckStats, error) {
	var stats CheckStats

	// The prologue payload always sits dsize bytes before the first real
	// block (spec.md §3): a fixed (dsize, true) tag laid down once by
	// Init and never touched again.
	prologuePayload := h.blocksLo - dsize
	prologueTag, err := getWord(h.region, headerAddr(prologuePayload))
	if err != nil {
		return stats, err
	}
	if size, alloc := unpackTag(prologueTag); size != dsize || !alloc {
		return stats, &ErrILSEQ{Type: ErrPrologue, Off: prologuePayload}
	}

	class := map[int64]int{} // free block address -> its size class

	prevFree := false
	p := h.blocksLo
	for p < h.frontier {
		hdr, err := getWord(h.region, headerAddr(p))
		if err != nil {
			return stats, err
		}

		size, alloc := unpackTag(hdr)
		if size <= 0 || size%dsize != 0 {
			return stats, &ErrILSEQ{Type: ErrBadSize, Off: p, Arg: size}
		}

		ftr, err := getWord(h.region, footerAddr(p, size))
		if err != nil || ftr != hdr {
			return stats, &ErrILSEQ{Type: ErrTagMismatch, Off: p}
		}

		if !alloc && prevFree {
			return stats, &ErrILSEQ{Type: ErrAdjacentFree, Off: p}
		}

		stats.TotalBlocks++
		if alloc {
			stats.AllocBlocks++
			stats.AllocBytes += size
		} else {
			stats.FreeBlocks++
			stats.FreeBytes += size
			class[p] = sizeToClass(size)
		}

		prevFree = !alloc
		p = nextBlockAddr(p, size)
	}

	if headerAddr(p) != h.frontier {
		return stats, &ErrILSEQ{Type: ErrBadSize, Off: p}
	}

	epi, err := getWord(h.region, h.frontier)
	if err != nil {
		return stats, err
	}
	if epiSize, epiAlloc := unpackTag(epi); epiSize != 0 || !epiAlloc {
		return stats, &ErrILSEQ{Type: ErrEpilogue, Off: h.frontier}
	}

	found := make(map[int64]bool, len(class))
	for c := 0; c < numClasses; c++ {
		addr, err := h.dir.head(c)
		if err != nil {
			return stats, err
		}

		prev := int64(0)
		for addr != 0 {
			wantClass, isFree := class[addr]
			if !isFree {
				return stats, &ErrILSEQ{Type: ErrWrongClass, Off: addr, Arg: int64(c)}
			}
			if wantClass != c {
				return stats, &ErrILSEQ{Type: ErrWrongClass, Off: addr, Arg: int64(c)}
			}

			linkedPrev, err := blockPrev(h.region, addr)
			if err != nil {
				return stats, err
			}
			if linkedPrev != prev {
				return stats, &ErrILSEQ{Type: ErrBadListHead, Off: addr}
			}

			found[addr] = true
			prev = addr
			if addr, err = blockNext(h.region, addr); err != nil {
				return stats, err
			}
		}
	}

	if len(found) != len(class) {
		missing := make(sortutil.Int64Slice, 0, len(class))
		for addr := range class {
			if !found[addr] {
				missing = append(missing, addr)
			}
		}
		sort.Sort(missing)
		return stats, &ErrILSEQ{Type: ErrWrongClass, Off: missing[0], Arg: int64(len(missing))}
	}

	return stats, nil
}
