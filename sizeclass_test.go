// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "testing"

func TestSizeToClass(t *testing.T) {
	tab := []struct {
		size  int64
		class int
	}{
		{1, 0},
		{64, 0},
		{65, 1},
		{128, 1},
		{129, 2},
		{256, 2},
		{257, 3},
		{512, 3},
		{1024, 4},
		{2048, 5},
		{4096, 6},
		{8192, 7},
		{16384, 8},
		{16385, 9},
		{1 << 20, 9},
	}

	for _, test := range tab {
		if got := sizeToClass(test.size); got != test.class {
			t.Fatalf("sizeToClass(%d) == %d, want %d", test.size, got, test.class)
		}
	}
}

func TestSizeToClassMonotonic(t *testing.T) {
	prev := sizeToClass(1)
	for s := int64(1); s <= 1<<20; s += 7 {
		c := sizeToClass(s)
		if c < prev {
			t.Fatalf("sizeToClass regressed at size %d: %d -> %d", s, prev, c)
		}
		if c < 0 || c >= numClasses {
			t.Fatalf("sizeToClass(%d) == %d out of range", s, c)
		}
		prev = c
	}
}
