// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package malloclab

import (
	"golang.org/x/sys/unix"
)

var _ Region = (*MmapRegion)(nil)

// MmapRegion is a Region backed by a real anonymous mapping acquired via
// golang.org/x/sys/unix, the way github.com/alexlewtschuk/balloc mmaps the
// pool it hands out to buddyMalloc. Unlike balloc's fixed-size pool,
// MmapRegion grows: each Grow remaps into a larger anonymous mapping,
// copies the live bytes across, and unmaps the old one, preserving the
// "monotonic growth, never returned to the OS" contract of spec.md §3
// invariant 7 for the mapping itself (the old mapping is released only
// because its content has been relocated, not because the heap shrank).
type MmapRegion struct {
	data []byte
}

// NewMmapRegion returns an empty MmapRegion.
func NewMmapRegion() *MmapRegion {
	return &MmapRegion{}
}

// Grow implements Region.
func (r *MmapRegion) Grow(n int64) (addr int64, err error) {
	if n < 0 {
		return 0, &ErrINVAL{"MmapRegion.Grow: negative size", n}
	}

	addr = int64(len(r.data))
	newSize := addr + n
	if newSize == 0 {
		return addr, nil
	}

	next, merr := unix.Mmap(-1, 0, int(newSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if merr != nil {
		return 0, &ErrNoMem{Requested: n}
	}

	copy(next, r.data)
	if r.data != nil {
		if uerr := unix.Munmap(r.data); uerr != nil {
			unix.Munmap(next)
			return 0, uerr
		}
	}

	r.data = next
	return addr, nil
}

// Low implements Region.
func (r *MmapRegion) Low() int64 { return 0 }

// High implements Region.
func (r *MmapRegion) High() int64 { return int64(len(r.data)) - 1 }

// ReadAt implements Region.
func (r *MmapRegion) ReadAt(b []byte, off int64) (n int, err error) {
	if off < 0 || off+int64(len(b)) > int64(len(r.data)) {
		return 0, &ErrINVAL{"MmapRegion.ReadAt: out of range", off}
	}

	return copy(b, r.data[off:off+int64(len(b))]), nil
}

// WriteAt implements Region.
func (r *MmapRegion) WriteAt(b []byte, off int64) (n int, err error) {
	if off < 0 || off+int64(len(b)) > int64(len(r.data)) {
		return 0, &ErrINVAL{"MmapRegion.WriteAt: out of range", off}
	}

	return copy(r.data[off:off+int64(len(b))], b), nil
}

// Close releases the underlying mapping. After Close the MmapRegion must
// not be used.
func (r *MmapRegion) Close() error {
	if r.data == nil {
		return nil
	}

	err := unix.Munmap(r.data)
	r.data = nil
	return err
}
