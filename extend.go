// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// extend implements the heap extender (spec.md §4.5): grow the region in
// an 8-byte-aligned chunk, turn the old epilogue into the header of a
// fresh free block, and lay a new epilogue past it. It hands the new
// block to the coalescer before returning, exactly as lldb's
// NewAllocator/alloc path always routes a freshly grown tail through
// free2 before the finder ever sees it.
//
// nbytes need not already be 8-aligned; it is rounded up here. The old
// epilogue's 4 header bytes are reused as the first word of the new
// block — the Region only needs to grow by nbytes, not nbytes+4, because
// the final word of those nbytes becomes the new epilogue.
func (h *Heap) extend(nbytes int64) (int64, error) {
	nbytes = clampMinBytes((nbytes+dsize-1)&^(dsize-1), dsize)

	oldEpilogue := h.frontier
	if _, err := h.region.Grow(nbytes); err != nil {
		return 0, &ErrNoMem{Requested: nbytes}
	}

	newBlock := oldEpilogue + wordSize
	if err := putTag(h.region, newBlock, nbytes, false); err != nil {
		return 0, err
	}

	newEpilogue := oldEpilogue + nbytes
	if err := putWord(h.region, newEpilogue, packTag(0, true)); err != nil {
		return 0, err
	}
	h.frontier = newEpilogue

	return h.coalesce(newBlock, nbytes)
}
