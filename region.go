// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import (
	"fmt"

	"github.com/cznic/mathutil"
)

// A Region is a []byte-like model of the host's backing memory, the
// "brk-like facility" spec.md §6 calls for. In contrast to a Filer (which a
// Region is modeled after), a Region only ever grows: there is no Truncate,
// no PunchHole, no transactional nesting, because the heap built on top of
// it never returns pages and is not persisted.
//
// A Region is not safe for concurrent access; the allocator built on top of
// it is single-threaded by contract (spec.md §5).
type Region interface {
	// Grow appends n bytes to the region and returns the address (byte
	// offset) of the first newly added byte. Existing content is
	// preserved. An error indicates the host is out of memory; the
	// region is left unchanged.
	Grow(n int64) (addr int64, err error)

	// Low returns the lowest valid byte address in the region.
	Low() int64

	// High returns the highest valid byte address currently in the
	// region, or Low()-1 if the region is empty.
	High() int64

	// ReadAt reads len(b) bytes starting at off. off+len(b) must not
	// exceed High()+1.
	ReadAt(b []byte, off int64) (n int, err error)

	// WriteAt writes len(b) bytes starting at off. off+len(b) must not
	// exceed High()+1.
	WriteAt(b []byte, off int64) (n int, err error)
}

var _ Region = (*MemRegion)(nil)

// MemRegion is a Go-slice backed Region. It is the default host memory
// primitive, used by every test and by the CLI driver unless -mmap is
// given; it plays the role lldb.MemFiler plays for lldb.Allocator.
type MemRegion struct {
	buf []byte
}

// NewMemRegion returns an empty MemRegion.
func NewMemRegion() *MemRegion {
	return &MemRegion{}
}

// Grow implements Region.
func (r *MemRegion) Grow(n int64) (addr int64, err error) {
	if n < 0 {
		return 0, &ErrINVAL{"MemRegion.Grow: negative size", n}
	}

	addr = int64(len(r.buf))
	// A real brk-like primitive can fail; nothing here ever does, but
	// the method keeps the fallible signature Region requires so callers
	// (extend.go) exercise the real out-of-memory path uniformly across
	// Region implementations.
	r.buf = append(r.buf, make([]byte, n)...)
	return addr, nil
}

// Low implements Region.
func (r *MemRegion) Low() int64 { return 0 }

// High implements Region.
func (r *MemRegion) High() int64 { return int64(len(r.buf)) - 1 }

// ReadAt implements Region.
func (r *MemRegion) ReadAt(b []byte, off int64) (n int, err error) {
	if off < 0 || off+int64(len(b)) > int64(len(r.buf)) {
		return 0, &ErrINVAL{"MemRegion.ReadAt: out of range", off}
	}

	return copy(b, r.buf[off:off+int64(len(b))]), nil
}

// WriteAt implements Region.
func (r *MemRegion) WriteAt(b []byte, off int64) (n int, err error) {
	if off < 0 || off+int64(len(b)) > int64(len(r.buf)) {
		return 0, &ErrINVAL{"MemRegion.WriteAt: out of range", off}
	}

	return copy(r.buf[off:off+int64(len(b))], b), nil
}

// Bytes returns the region's current backing slice, for diagnostics and
// tests only; callers must not retain it across a Grow.
func (r *MemRegion) Bytes() []byte { return r.buf }

func (r *MemRegion) String() string {
	return fmt.Sprintf("MemRegion{size: %d}", len(r.buf))
}

// clampMinBytes rounds n up to min, used by extend.go to keep a growth
// request from ever dropping below the smallest meaningful chunk (dsize).
func clampMinBytes(n, min int64) int64 {
	return mathutil.MaxInt64(n, min)
}
