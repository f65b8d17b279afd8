// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

// find implements the finder (spec.md §4.8): first-fit search starting at
// sizeToClass(asize), escalating to larger classes until a fit is found
// or the directory is exhausted. It mirrors flt.find in lldb's flt.go,
// specialized to walk the chain itself (lldb's flt abstracts the walk
// behind FLT.Report; our directory exposes head/next directly, so the
// walk lives here instead).
//
// Returns the payload address of the first block whose size is >= asize,
// or 0 if none exists anywhere in the directory.
func (h *Heap) find(asize int64) (int64, error) {
	for class := sizeToClass(asize); class < numClasses; class++ {
		p, err := h.dir.head(class)
		if err != nil {
			return 0, err
		}

		for p != 0 {
			size, alloc, err := getTag(h.region, p)
			if err != nil {
				return 0, err
			}
			if alloc {
				return 0, &ErrILSEQ{Type: ErrWrongClass, Off: p}
			}
			if size >= asize {
				return p, nil
			}

			p, err = blockNext(h.region, p)
			if err != nil {
				return 0, err
			}
		}
	}
	return 0, nil
}
