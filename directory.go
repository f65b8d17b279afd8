// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// Segregated free-list directory (spec.md §3, §4.4). Ten list heads sit at
// the very start of the region, one per size class, each a 4-byte slot
// encoded exactly like a free-list link word (spec.md §9 note). This plays
// the role lldb's flt/FLTSlot plays for lldb.Allocator, minus the
// persistence bookkeeping flt carries — the directory here is just live
// words inside the Region, not a separately reportable structure.
type directory struct {
	r    Region
	base int64 // address of class-0's head slot
}

// directorySize is the number of bytes the directory occupies at the
// front of the region (spec.md §3: "10 x 4 bytes").
const directorySize = numClasses * wordSize

func newDirectory(r Region, base int64) *directory {
	return &directory{r: r, base: base}
}

func (d *directory) slot(class int) int64 { return d.base + int64(class)*wordSize }

// head returns the first block of class's chain, or 0 if the chain is
// empty.
func (d *directory) head(class int) (int64, error) {
	w, err := getWord(d.r, d.slot(class))
	if err != nil {
		return 0, err
	}
	return fromLink(d.r, w), nil
}

// setHead overwrites class's head slot directly — never through a cached
// copy. spec.md §9 flags a historical bug where a head update landed on a
// local variable instead of the directory slot; every write here goes
// straight to the slot in the Region.
func (d *directory) setHead(class int, addr int64) error {
	return putWord(d.r, d.slot(class), toLink(d.r, addr))
}

// insert adds p, a free block of the given size, to the head of its size
// class's chain (LIFO, spec.md §4.4).
func (d *directory) insert(p, size int64) error {
	class := sizeToClass(size)
	old, err := d.head(class)
	if err != nil {
		return err
	}

	if err := setBlockPrev(d.r, p, 0); err != nil {
		return err
	}
	if err := setBlockNext(d.r, p, old); err != nil {
		return err
	}
	if old != 0 {
		if err := setBlockPrev(d.r, old, p); err != nil {
			return err
		}
	}
	return d.setHead(class, p)
}

// unlink removes p, a free block of the given size with already-known
// prev/next links, from its size class's chain.
func (d *directory) unlink(p, size, prev, next int64) error {
	class := sizeToClass(size)

	if prev == 0 {
		if err := d.setHead(class, next); err != nil {
			return err
		}
	} else if err := setBlockNext(d.r, prev, next); err != nil {
		return err
	}

	if next != 0 {
		if err := setBlockPrev(d.r, next, prev); err != nil {
			return err
		}
	}
	return nil
}

// unlinkBlock reads p's own links and unlinks it from class's chain.
func (d *directory) unlinkBlock(p, size int64) error {
	prev, err := blockPrev(d.r, p)
	if err != nil {
		return err
	}
	next, err := blockNext(d.r, p)
	if err != nil {
		return err
	}
	return d.unlink(p, size, prev, next)
}
