// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "testing"

func newTestDirectory(t *testing.T) (*MemRegion, *directory) {
	t.Helper()
	r := NewMemRegion()
	base, err := r.Grow(directorySize)
	if err != nil {
		t.Fatal(err)
	}
	if base != 0 {
		t.Fatalf("directory base == %d, want 0", base)
	}
	if _, err := r.Grow(256); err != nil {
		t.Fatal(err)
	}
	return r, newDirectory(r, base)
}

func chain(t *testing.T, r *MemRegion, d *directory, class int) []int64 {
	t.Helper()
	var got []int64
	addr, err := d.head(class)
	if err != nil {
		t.Fatal(err)
	}
	for addr != 0 {
		got = append(got, addr)
		addr, err = blockNext(r, addr)
		if err != nil {
			t.Fatal(err)
		}
	}
	return got
}

func TestDirectoryLIFOInsert(t *testing.T) {
	r, d := newTestDirectory(t)

	// Three blocks of size 32 all map to class 0; insert order a, b, c
	// must come back out c, b, a (LIFO, spec.md §4.4).
	const a, b, c = 40, 56, 72
	for _, p := range []int64{a, b, c} {
		if err := d.insert(p, 32); err != nil {
			t.Fatal(err)
		}
	}

	got := chain(t, r, d, sizeToClass(32))
	want := []int64{c, b, a}
	if len(got) != len(want) {
		t.Fatalf("chain == %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain == %v, want %v", got, want)
		}
	}

	// First element's prev must be null, last element's next must be
	// null (spec.md invariant 6).
	if prev, _ := blockPrev(r, c); prev != 0 {
		t.Fatalf("head's prev == %d, want 0", prev)
	}
	if next, _ := blockNext(r, a); next != 0 {
		t.Fatalf("tail's next == %d, want 0", next)
	}
}

func TestDirectoryUnlinkMiddle(t *testing.T) {
	r, d := newTestDirectory(t)

	const a, b, c = 40, 56, 72
	for _, p := range []int64{a, b, c} {
		if err := d.insert(p, 32); err != nil {
			t.Fatal(err)
		}
	}
	// chain is c -> b -> a

	if err := d.unlinkBlock(b, 32); err != nil {
		t.Fatal(err)
	}

	got := chain(t, r, d, sizeToClass(32))
	want := []int64{c, a}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("chain after unlinking middle == %v, want %v", got, want)
	}
}

func TestDirectoryUnlinkHead(t *testing.T) {
	r, d := newTestDirectory(t)

	const a, b = 40, 56
	for _, p := range []int64{a, b} {
		if err := d.insert(p, 32); err != nil {
			t.Fatal(err)
		}
	}
	// chain is b -> a

	if err := d.unlinkBlock(b, 32); err != nil {
		t.Fatal(err)
	}

	got := chain(t, r, d, sizeToClass(32))
	if len(got) != 1 || got[0] != a {
		t.Fatalf("chain after unlinking head == %v, want [%d]", got, a)
	}
	if prev, _ := blockPrev(r, a); prev != 0 {
		t.Fatalf("new head's prev == %d, want 0", prev)
	}
}

func TestDirectoryUnlinkOnlyElement(t *testing.T) {
	r, d := newTestDirectory(t)

	const a = 40
	if err := d.insert(a, 32); err != nil {
		t.Fatal(err)
	}
	if err := d.unlinkBlock(a, 32); err != nil {
		t.Fatal(err)
	}

	got := chain(t, r, d, sizeToClass(32))
	if len(got) != 0 {
		t.Fatalf("chain after unlinking only element == %v, want empty", got)
	}
}
