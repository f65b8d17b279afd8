// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "testing"

func TestFindEscalatesClasses(t *testing.T) {
	h, err := New(NewMemRegion())
	if err != nil {
		t.Fatal(err)
	}

	// Drain the initial 4096-byte free block so only explicitly placed
	// blocks are visible to find.
	if _, err := h.Allocate(4096 - 16); err != nil {
		t.Fatal(err)
	}

	// Hand-place a single free block of size 1<<16 directly into its
	// class, the last one (bypassing Allocate/extend), to exercise find
	// in isolation.
	const block = 1 << 16
	if _, err := h.region.Grow(block + 16); err != nil {
		t.Fatal(err)
	}
	addr := h.frontier + wordSize
	if err := putTag(h.region, addr, block, false); err != nil {
		t.Fatal(err)
	}
	if err := h.dir.insert(addr, block); err != nil {
		t.Fatal(err)
	}

	// Requesting a small size finds nothing in its own (empty) class and
	// must escalate until it reaches the class holding our block.
	got, err := h.find(64)
	if err != nil {
		t.Fatal(err)
	}
	if got != addr {
		t.Fatalf("find(64) == %#x, want %#x (escalated to the only free block)", got, addr)
	}
}

func TestFindNotFound(t *testing.T) {
	h, err := New(NewMemRegion())
	if err != nil {
		t.Fatal(err)
	}

	// Consume the whole initial 4096-byte free block so nothing remains.
	if _, err := h.Allocate(initialHeapBytes - 16); err != nil {
		t.Fatal(err)
	}

	got, err := h.find(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("find on an exhausted directory == %#x, want 0", got)
	}
}
