// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// Size-class index (spec.md §3, §4.3): ten disjoint buckets with
// boundaries at powers of two from 64 up to 16384, modeled after the
// canned FLTPowersOf2 table in lldb's newCannedFLT (flt.go) but fixed at
// exactly the ten slots spec.md mandates rather than configurable.
const numClasses = 10

// classBoundary[i] is the largest size (inclusive) that still belongs to
// class i, for i < numClasses-1. Class numClasses-1 has no upper bound.
var classBoundary = [numClasses - 1]int64{
	64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384,
}

// sizeToClass returns the smallest class index i such that size <=
// 2^(6+i), for i in 0..8; sizes above 16384 map to class 9. No ordering
// within a class is maintained by the directory — classes are bucketed,
// not sorted (spec.md §4.3).
func sizeToClass(size int64) int {
	for i, b := range classBoundary {
		if size <= b {
			return i
		}
	}
	return numClasses - 1
}
