// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "testing"

func TestBlockLinks(t *testing.T) {
	r := NewMemRegion()
	if _, err := r.Grow(64); err != nil {
		t.Fatal(err)
	}

	const p = 16
	if err := setBlockPrev(r, p, 0); err != nil {
		t.Fatal(err)
	}
	if err := setBlockNext(r, p, 40); err != nil {
		t.Fatal(err)
	}

	prev, err := blockPrev(r, p)
	if err != nil {
		t.Fatal(err)
	}
	if prev != 0 {
		t.Fatalf("blockPrev == %d, want 0", prev)
	}

	next, err := blockNext(r, p)
	if err != nil {
		t.Fatal(err)
	}
	if next != 40 {
		t.Fatalf("blockNext == %d, want 40", next)
	}
}

func TestToFromLink(t *testing.T) {
	r := NewMemRegion()
	if toLink(r, 0) != 0 {
		t.Fatal("toLink(0) must stay 0 (null sentinel)")
	}
	if fromLink(r, 0) != 0 {
		t.Fatal("fromLink(0) must stay 0 (null sentinel)")
	}

	for _, addr := range []int64{8, 64, 1 << 20} {
		if got := fromLink(r, toLink(r, addr)); got != addr {
			t.Fatalf("fromLink(toLink(%d)) == %d", addr, got)
		}
	}
}
