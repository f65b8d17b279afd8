// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "encoding/binary"

// Block layout primitives (spec.md §4.1).
//
// Every block, allocated or free, is flanked by a 4-byte header and a
// 4-byte footer carrying the same packed (size, alloc) word. Sizes are
// multiples of 8, so only the low bit of the word is a real flag; the
// other two spare low bits are unused padding, kept for symmetry with the
// Allocator's on-disk tag bytes in lldb.Allocator.nfo.
const (
	wordSize  = 4  // bytes per header/footer word
	dsize     = 8  // double word: the alignment unit
	minBlock  = 16 // header + footer + two link words
	allocBit  = 1
	allocMask = ^int64(0x7)
)

// packTag packs size (a non-negative multiple of 8) and the allocation
// flag into the 32-bit word stored at a header or footer.
func packTag(size int64, alloc bool) uint32 {
	w := uint32(size)
	if alloc {
		w |= allocBit
	}
	return w
}

// unpackTag is the inverse of packTag.
func unpackTag(w uint32) (size int64, alloc bool) {
	return int64(w) &^ 0x7, w&allocBit != 0
}

func getWord(r Region, off int64) (uint32, error) {
	var b [wordSize]byte
	if _, err := r.ReadAt(b[:], off); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func putWord(r Region, off int64, w uint32) error {
	var b [wordSize]byte
	binary.BigEndian.PutUint32(b[:], w)
	_, err := r.WriteAt(b[:], off)
	return err
}

// headerAddr returns the address of p's header word.
func headerAddr(p int64) int64 { return p - wordSize }

// footerAddr returns the address of p's footer word, given p's current
// size.
func footerAddr(p, size int64) int64 { return p + size - wordSize*2 }

// nextBlockAddr returns the payload address of the block physically
// following p, given p's current size.
func nextBlockAddr(p, size int64) int64 { return p + size }

// getTag reads and unpacks the header word at payload address p.
func getTag(r Region, p int64) (size int64, alloc bool, err error) {
	w, err := getWord(r, headerAddr(p))
	if err != nil {
		return 0, false, err
	}
	size, alloc = unpackTag(w)
	return size, alloc, nil
}

// putTag writes size/alloc into both the header and the footer of the
// block at payload address p. Per spec.md invariant 2, header and footer
// must always carry the identical word.
func putTag(r Region, p, size int64, alloc bool) error {
	w := packTag(size, alloc)
	if err := putWord(r, headerAddr(p), w); err != nil {
		return err
	}
	return putWord(r, footerAddr(p, size), w)
}

// prevBlockInfo reads the footer of the block physically preceding p and
// returns its size and allocation bit. p must not be the first block in
// the heap (the prologue has no predecessor).
func prevBlockInfo(r Region, p int64) (size int64, alloc bool, err error) {
	w, err := getWord(r, p-2*wordSize)
	if err != nil {
		return 0, false, err
	}
	size, alloc = unpackTag(w)
	return size, alloc, nil
}
