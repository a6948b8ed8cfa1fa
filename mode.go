// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import "strconv"

// A Mode describes how a segment's data bits are interpreted.
type Mode int

// Segment encoding modes.  Kanji is defined for completeness but has
// no factory function here: MakeSegments never selects it, and no
// Shift JIS character tables are carried.
const (
	Numeric      Mode = iota // decimal digits
	Alphanumeric             // digits, uppercase letters, " $%*+-./:"
	Byte                     // any data
	Kanji                    // JIS X 0208 kanji subset
	ECI                      // extended channel interpretation designator
)

var modeNames = [...]string{
	"numeric", "alphanumeric", "byte", "kanji", "eci",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return strconv.Itoa(int(m))
}

// check panics if m is not a valid mode.
func (m Mode) check() {
	if m < Numeric || m > ECI {
		panic("qrsym: mode out of range")
	}
}

// indicator returns the 4-bit mode indicator written before each
// segment.
func (m Mode) indicator() uint32 {
	return [...]uint32{1, 2, 4, 8, 7}[m]
}

// countBits is the width in bits of the character count field, per
// mode and version size class.
var countBits = [...][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
	ECI:          {0, 0, 0},
}

// CountBits returns the width in bits of the character count field
// for a segment in mode m in a symbol with version v.
func (m Mode) CountBits(v Version) int {
	m.check()
	return countBits[m][v.SizeClass()]
}
