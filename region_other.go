// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package malloclab

// NewMmapRegion on non-Unix hosts makes no mapping: it returns an empty
// MemRegion, the same as NewMemRegion.
func NewMmapRegion() *MemRegion {
	return NewMemRegion()
}
