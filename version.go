// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import "strconv"

// A Version represents a QR code version.  The version specifies the
// size of the symbol: a QR code with version v has 4v+17 modules on a
// side.  The larger the version, the more information the code can
// store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// check panics if v is outside [MinVersion, MaxVersion].
func (v Version) check() {
	if v < MinVersion || v > MaxVersion {
		panic("qrsym: version out of range")
	}
}

// Size returns the number of modules on a side of a symbol with
// version v, between 21 and 177.
func (v Version) Size() int {
	v.check()
	return int(v)*4 + 17
}

// Version size classes, determining the width of segment character
// count fields.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	v.check()
	switch {
	case v <= 9:
		return Class0
	case v <= 26:
		return Class1
	}
	return Class2
}

// RawDataModules returns the number of modules available for data and
// error correction bits in a symbol with version v, after all
// function modules are excluded.  This includes remainder bits, so it
// might not be a multiple of 8.  The result is in [208, 29648].
func (v Version) RawDataModules() int {
	v.check()
	n := int(v)
	result := (16*n+128)*n + 64
	if n >= 2 {
		numalign := n/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if n >= 7 {
			result -= 36
		}
	}
	return result
}

// DataCodewords returns the number of 8-bit data codewords (excluding
// error correction) that can be stored in a symbol with version v at
// level l, with remainder bits discarded.
func (v Version) DataCodewords(l Level) int {
	return v.RawDataModules()/8 -
		int(eccCodewordsPerBlock[l.ordinal()][v])*
			int(numErrorCorrectionBlocks[l.ordinal()][v])
}
