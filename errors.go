// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloclab

import "fmt"

// ErrType enumerates the kinds of internal inconsistency Check can detect.
type ErrType int

// ErrType values.
const (
	ErrTagMismatch  ErrType = iota // header word != footer word
	ErrBadSize                     // size is not a positive multiple of 8
	ErrAdjacentFree                // two physically adjacent blocks are both free
	ErrWrongClass                  // a chain holds a non-free block or a block of another class, or a free block is in no chain
	ErrBadListHead                 // a chain member's prev link is not the element before it (null for the head)
	ErrPrologue                    // prologue tag is not (8,1)
	ErrEpilogue                    // epilogue tag is not (0,1) at the frontier
)

func (t ErrType) String() string {
	switch t {
	case ErrTagMismatch:
		return "header/footer mismatch"
	case ErrBadSize:
		return "invalid block size"
	case ErrAdjacentFree:
		return "adjacent free blocks not coalesced"
	case ErrWrongClass:
		return "free block in wrong size class"
	case ErrBadListHead:
		return "free list head/prev inconsistency"
	case ErrPrologue:
		return "prologue sentinel corrupted"
	case ErrEpilogue:
		return "epilogue sentinel corrupted"
	default:
		return "unknown inconsistency"
	}
}

// ErrILSEQ reports an internal heap inconsistency found while walking the
// block chain or a free list. Check produces it for every kind of
// inconsistency; the only other source is the finder, which reports an
// allocated block met on a free-list chain, and Allocate passes that
// error on to its caller.
type ErrILSEQ struct {
	Type ErrType
	Off  int64 // byte offset of the offending block, if known
	Arg  int64 // extra diagnostic value, meaning depends on Type
}

func (e *ErrILSEQ) Error() string {
	return fmt.Sprintf("%s at offset %#x (arg %d)", e.Type, e.Off, e.Arg)
}

// ErrINVAL reports a caller or Region contract violation: an argument
// outside the domain the function is willing to operate on.
type ErrINVAL struct {
	Msg string
	Arg interface{}
}

func (e *ErrINVAL) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Arg)
}

// ErrNoMem reports that the Region could not grow by the requested amount.
type ErrNoMem struct {
	Requested int64
}

func (e *ErrNoMem) Error() string {
	return fmt.Sprintf("out of memory: region growth of %d bytes failed", e.Requested)
}
