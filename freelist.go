// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// Free-list node primitives (spec.md §4.2, and the open question in §9
// resolved as option (b)). The first four bytes of a free block's payload
// are its predecessor link, the next four its successor link. A machine
// pointer does not fit in 4 bytes on a 64-bit host, so both links are
// stored as 32-bit byte offsets relative to the Region's low address
// rather than raw addresses; 0 encodes "no link" because the region's
// first valid payload address is always strictly above its low address
// (the directory, prologue header and footer precede it).
//
// Link words are meaningless on an allocated block and must not be read;
// callers are expected to check the allocation bit first.

func toLink(r Region, addr int64) uint32 {
	if addr == 0 {
		return 0
	}
	return uint32(addr - r.Low())
}

func fromLink(r Region, off uint32) int64 {
	if off == 0 {
		return 0
	}
	return int64(off) + r.Low()
}

// blockPrev returns the predecessor link of the free block at p, or 0 if
// it is the first element of its class's chain.
func blockPrev(r Region, p int64) (int64, error) {
	w, err := getWord(r, p)
	if err != nil {
		return 0, err
	}
	return fromLink(r, w), nil
}

// blockNext returns the successor link of the free block at p, or 0 if it
// is the last element of its class's chain.
func blockNext(r Region, p int64) (int64, error) {
	w, err := getWord(r, p+wordSize)
	if err != nil {
		return 0, err
	}
	return fromLink(r, w), nil
}

// setBlockPrev sets p's predecessor link to prev (0 clears it).
func setBlockPrev(r Region, p, prev int64) error {
	return putWord(r, p, toLink(r, prev))
}

// setBlockNext sets p's successor link to next (0 clears it).
func setBlockNext(r Region, p, next int64) error {
	return putWord(r, p+wordSize, toLink(r, next))
}
