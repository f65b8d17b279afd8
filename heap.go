// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package malloclab implements a general-purpose dynamic storage
// allocator over a single, contiguous, monotonically growable byte
// region supplied by a Region (the host's brk-like memory primitive).
//
// It is the classical triple allocate/free/reallocate over untyped byte
// blocks whose addresses are stable for the block's lifetime and whose
// payloads are 8-byte aligned, built the way lldb.Allocator (github.com/
// cznic/exp/lldb) builds an analogous allocator over a Filer: in-band
// boundary tags, a segregated free-list directory, and first-fit search
// escalating through size classes. See SPEC_FULL.md for the full design.
//
// The allocator is single-threaded by contract; a Heap value must not be
// used from more than one goroutine without external synchronization.
package malloclab

import "github.com/cznic/mathutil"

// initialHeapBytes is the size of the first free block Init creates
// (spec.md §4.9).
const initialHeapBytes = 4096

// minExtendBytes is the minimum amount the heap is grown by on a finder
// miss (spec.md §4.9: "extend the heap by max(asize, 4096) bytes").
const minExtendBytes = 4096

// Heap is a single allocator instance: a Region plus the live directory
// and frontier bookkeeping needed to operate on it. The zero Heap is not
// usable; construct one with New.
type Heap struct {
	region   Region
	dir      *directory
	frontier int64 // address of the current epilogue header
	blocksLo int64 // lowest valid block payload address
}

// New constructs a Heap over region and initializes it (spec.md §4.9
// init). region must be empty (Region.High() < Region.Low()); to reuse
// an already-initialized region, Init is not idempotent and must not be
// called twice.
func New(region Region) (*Heap, error) {
	h := &Heap{region: region}
	if err := h.Init(); err != nil {
		return nil, err
	}
	return h, nil
}

// Init lays down the directory, the prologue/epilogue sentinels, and an
// initial 4096-byte free block (spec.md §4.9, §3). It returns an error
// iff any of the underlying Region growths failed; on success the heap
// is ready to serve Allocate.
func (h *Heap) Init() error {
	dirAddr, err := h.region.Grow(directorySize)
	if err != nil {
		return &ErrNoMem{Requested: directorySize}
	}
	h.dir = newDirectory(h.region, dirAddr)

	// Alignment pad, prologue header, prologue footer, epilogue header
	// (spec.md §3): 4 + 8 + 4 = 16 bytes.
	const prefix = wordSize + dsize + wordSize
	prefixAddr, err := h.region.Grow(prefix)
	if err != nil {
		return &ErrNoMem{Requested: prefix}
	}

	prologueHeader := prefixAddr + wordSize
	prologuePayload := prologueHeader + wordSize
	if err := putTag(h.region, prologuePayload, dsize, true); err != nil {
		return err
	}

	epilogueAddr := prologueHeader + dsize
	if err := putWord(h.region, epilogueAddr, packTag(0, true)); err != nil {
		return err
	}

	h.frontier = epilogueAddr
	h.blocksLo = epilogueAddr + wordSize

	_, err = h.extend(initialHeapBytes)
	return err
}

// allocSize computes asize = max(16, 8*ceil((size+8)/8)): room for one
// tag pair, rounded to an 8-byte multiple, clamped to the minimum block
// size (spec.md §4.9).
func allocSize(size int64) int64 {
	need := size + 2*wordSize
	aligned := (need + dsize - 1) &^ (dsize - 1)
	return mathutil.MaxInt64(aligned, minBlock)
}

// Allocate implements the public allocate operation (spec.md §4.9). A
// zero size returns 0 ("null"); any other size is rounded up per
// allocSize and served first-fit from the directory, falling back to
// extending the heap on a miss.
func (h *Heap) Allocate(size int64) (int64, error) {
	if size <= 0 {
		return 0, nil
	}

	asize := allocSize(size)

	p, err := h.find(asize)
	if err != nil {
		return 0, err
	}
	if p != 0 {
		if err := h.place(p, asize); err != nil {
			return 0, err
		}
		return p, nil
	}

	grow := mathutil.MaxInt64(asize, minExtendBytes)
	newBlock, err := h.extend(grow)
	if err != nil {
		return 0, err
	}
	if err := h.place(newBlock, asize); err != nil {
		return 0, err
	}
	return newBlock, nil
}

// validAllocated reports whether p currently addresses an allocated
// block with consistent header/footer tags, returning its size if so.
// It backs the defensive checks Free/Reallocate perform before
// trusting a caller-supplied pointer (spec.md §4.9, §7): out-of-range,
// already-free, or tag-inconsistent pointers are rejected here.
func (h *Heap) validAllocated(p int64) (size int64, ok bool) {
	if p < h.blocksLo || p >= h.frontier {
		return 0, false
	}

	hdr, err := getWord(h.region, headerAddr(p))
	if err != nil {
		return 0, false
	}
	size, alloc := unpackTag(hdr)
	if !alloc || size < minBlock || size%dsize != 0 {
		return 0, false
	}

	ftr, err := getWord(h.region, footerAddr(p, size))
	if err != nil || ftr != hdr {
		return 0, false
	}

	return size, true
}

// Free implements the public free operation (spec.md §4.9). A null
// pointer, an out-of-range pointer, a pointer to an already-free block,
// or one that fails the header/footer consistency check is silently
// ignored — this is a best-effort policy against double-free and
// corruption, not a security feature (spec.md §7, §9).
func (h *Heap) Free(p int64) {
	if p == 0 {
		return
	}

	size, ok := h.validAllocated(p)
	if !ok {
		return
	}

	if err := putTag(h.region, p, size, false); err != nil {
		return
	}
	h.coalesce(p, size)
}

// Reallocate implements the public reallocate operation (spec.md §4.9).
// A null p forwards to Allocate; a zero size forwards to Free and
// returns 0; an invalid p forwards to Allocate, discarding the caller's
// intent to preserve data (spec.md §7 notes this as a deliberate
// trade-off of the best-effort validation policy). Otherwise, a request
// that fits within the current block is split in place; a request that
// doesn't is served by a fresh Allocate, a copy of the old payload, and
// a Free of the old block.
func (h *Heap) Reallocate(p, size int64) (int64, error) {
	if p == 0 {
		return h.Allocate(size)
	}
	if size <= 0 {
		h.Free(p)
		return 0, nil
	}

	curSize, ok := h.validAllocated(p)
	if !ok {
		return h.Allocate(size)
	}

	asize := allocSize(size)
	if asize <= curSize {
		if err := h.splitAndMark(p, curSize, asize); err != nil {
			return 0, err
		}
		return p, nil
	}

	newP, err := h.Allocate(size)
	if err != nil {
		return 0, err
	}

	// Copy the entire old payload, including any trailing padding bytes,
	// per spec.md §4.9: "copy size(p) - 8 bytes". The header and footer
	// words are not copied.
	copyLen := curSize - 2*wordSize
	buf := make([]byte, copyLen)
	if _, err := h.region.ReadAt(buf, p); err != nil {
		return 0, err
	}
	if _, err := h.region.WriteAt(buf, newP); err != nil {
		return 0, err
	}

	h.Free(p)
	return newP, nil
}
