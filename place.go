// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// splitAndMark marks the block at b, currently curSize bytes and not
// threaded into any free list, as allocated at asize bytes. If the
// leftover (curSize - asize) meets the minimum block size it is split
// off and recycled into its size class; otherwise it becomes internal
// fragmentation inside the allocated block, never tracked separately
// (spec.md §4.7 — "Minimum-remainder threshold is deliberately equal to
// the minimum block size, not greater").
//
// The split-off tail is routed through coalesce, not a bare directory
// insert: place's caller is a free victim whose neighbors are allocated
// by invariant 4, so the tail's right neighbor is always allocated too —
// but splitAndMark is also called directly by Reallocate's in-place
// shrink path, where b was previously an allocated block and its right
// neighbor may already be free. Without coalescing, shrinking a block
// right next to a free block would leave two adjacent free blocks,
// violating spec.md §3 invariant 4.
func (h *Heap) splitAndMark(b, curSize, asize int64) error {
	region := h.region

	remainder := curSize - asize
	if remainder >= minBlock {
		if err := putTag(region, b, asize, true); err != nil {
			return err
		}

		tail := nextBlockAddr(b, asize)
		if err := putTag(region, tail, remainder, false); err != nil {
			return err
		}
		_, err := h.coalesce(tail, remainder)
		return err
	}

	return putTag(region, b, curSize, true)
}

// place implements the placement/splitter (spec.md §4.7) for a victim
// found by the finder: detach it from its free list, then split and mark
// it allocated. This is the analogue of the split half of lldb's
// Allocator.alloc (falloc.go), which likewise unlinks before writing the
// used-block tags.
//
// b must already be known to be a free block of size >= asize.
func (h *Heap) place(b, asize int64) error {
	size, _, err := getTag(h.region, b)
	if err != nil {
		return err
	}

	if err := h.dir.unlinkBlock(b, size); err != nil {
		return err
	}

	return h.splitAndMark(b, size, asize)
}
