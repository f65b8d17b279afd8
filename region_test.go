// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import (
	"bytes"
	"testing"
)

func TestMemRegionGrowPreservesContent(t *testing.T) {
	r := NewMemRegion()

	addr, err := r.Grow(8)
	if err != nil {
		t.Fatal(err)
	}
	if addr != 0 {
		t.Fatalf("first Grow address == %d, want 0", addr)
	}

	if _, err := r.WriteAt([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 0); err != nil {
		t.Fatal(err)
	}

	addr2, err := r.Grow(8)
	if err != nil {
		t.Fatal(err)
	}
	if addr2 != 8 {
		t.Fatalf("second Grow address == %d, want 8", addr2)
	}

	got := make([]byte, 8)
	if _, err := r.ReadAt(got, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("content after Grow == %v, want preserved", got)
	}

	if r.High() != 15 {
		t.Fatalf("High() == %d, want 15", r.High())
	}
}

func TestMemRegionOutOfRange(t *testing.T) {
	r := NewMemRegion()
	if _, err := r.Grow(4); err != nil {
		t.Fatal(err)
	}

	if _, err := r.ReadAt(make([]byte, 4), 4); err == nil {
		t.Fatal("ReadAt past High() must fail")
	}
	if _, err := r.WriteAt(make([]byte, 1), -1); err == nil {
		t.Fatal("WriteAt with negative offset must fail")
	}
}
