// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// coalesce implements the boundary-tag coalescer (spec.md §4.6), the
// direct analogue of lldb's Allocator.free2 (falloc.go) adapted from
// atom-handle addressing to byte-offset addressing and from lldb's
// isolated-vs-joined-vs-truncate cases (which also has to consider
// truncating a trailing free block, since lldb files can shrink) to the
// four cases spec.md defines — this heap never shrinks, so there is no
// truncate case; the epilogue sentinel absorbs that role by always
// reading as allocated.
//
// b is a block whose header and footer already read (size, 0) — freshly
// freed or freshly extended — but which is not yet in any free list.
// coalesce returns the payload address of the (possibly merged) free
// block, so callers can track where it ended up.
//
// Per spec.md §5: neighbors are unlinked before any tag is rewritten (so
// their own class recomputation, were it needed, would not see a stale
// size), and tags are rewritten before the merged block is inserted (so
// the class lookup on insert sees the final size).
func (h *Heap) coalesce(b, size int64) (int64, error) {
	region := h.region

	paSize, paAlloc, err := prevBlockInfo(region, b)
	if err != nil {
		return 0, err
	}

	naAddr := nextBlockAddr(b, size)
	naSize, naAlloc, err := getTag(region, naAddr)
	if err != nil {
		return 0, err
	}

	switch {
	case paAlloc && naAlloc:
		if err := h.dir.insert(b, size); err != nil {
			return 0, err
		}
		return b, nil

	case paAlloc && !naAlloc:
		if err := h.dir.unlinkBlock(naAddr, naSize); err != nil {
			return 0, err
		}
		merged := size + naSize
		if err := putTag(region, b, merged, false); err != nil {
			return 0, err
		}
		if err := h.dir.insert(b, merged); err != nil {
			return 0, err
		}
		return b, nil

	case !paAlloc && naAlloc:
		left := b - paSize
		if err := h.dir.unlinkBlock(left, paSize); err != nil {
			return 0, err
		}
		merged := paSize + size
		if err := putTag(region, left, merged, false); err != nil {
			return 0, err
		}
		if err := h.dir.insert(left, merged); err != nil {
			return 0, err
		}
		return left, nil

	default: // !paAlloc && !naAlloc
		left := b - paSize
		if err := h.dir.unlinkBlock(left, paSize); err != nil {
			return 0, err
		}
		if err := h.dir.unlinkBlock(naAddr, naSize); err != nil {
			return 0, err
		}
		merged := paSize + size + naSize
		if err := putTag(region, left, merged, false); err != nil {
			return 0, err
		}
		if err := h.dir.insert(left, merged); err != nil {
			return 0, err
		}
		return left, nil
	}
}
