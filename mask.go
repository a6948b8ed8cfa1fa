// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

// A Mask selects one of the 8 mask patterns defined by the standard,
// each an (x,y) predicate XORed over the non-function modules of the
// symbol.
type Mask int

// AutoMask requests automatic mask selection: all 8 patterns are
// evaluated and the one with the lowest penalty score wins, the
// lowest pattern number breaking ties.
const AutoMask Mask = -1

// check panics if m is neither AutoMask nor in [0, 7].
func (m Mask) check() {
	if m < AutoMask || m > 7 {
		panic("qrsym: mask out of range")
	}
}

// invert reports whether the mask inverts the module at (x, y).
func (m Mask) invert(x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	}
	panic("qrsym: mask out of range")
}
