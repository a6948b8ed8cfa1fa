// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import "strconv"

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // tolerates about  7% erroneous codewords
	M              // tolerates about 15% erroneous codewords
	Q              // tolerates about 25% erroneous codewords
	H              // tolerates about 30% erroneous codewords
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// check panics if l is not a valid level.
func (l Level) check() {
	if l < L || l > H {
		panic("qrsym: level out of range")
	}
}

// ordinal returns the table row index for l, in the range 0 to 3.
func (l Level) ordinal() int {
	l.check()
	return int(l)
}

// formatBits returns the 2-bit code representing l in the symbol's
// format information.  The codes (L=1, M=0, Q=3, H=2) differ from the
// ordinals; the inversion is mandated by the standard.
func (l Level) formatBits() uint32 {
	return [4]uint32{1, 0, 3, 2}[l.ordinal()]
}
