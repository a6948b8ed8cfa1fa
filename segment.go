// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import "strings"

// The set of all legal characters in alphanumeric mode, where each
// character value maps to its index in the string.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// A Segment is a chunk of character, binary or control data in a QR
// code symbol.  Segments are created by the Make functions (or, for
// hand-rolled data, by NewSegment) and are not modified afterwards.
//
// Segments impose no length restrictions, but symbols do.  Even in
// the most favourable conditions a symbol holds at most 7089
// characters of data; longer segments cannot be encoded.
type Segment struct {
	// Mode describes how Data is interpreted.
	Mode Mode

	// NumChars is the length of the segment's unencoded data:
	// characters for numeric/alphanumeric/kanji mode, bytes for byte
	// mode, 0 for ECI mode.  Not the same as the bit length of Data.
	NumChars int

	// Data holds the segment's payload already encoded per the
	// mode's rules.
	Data Bits
}

// NewSegment returns a segment with the given attributes and
// pre-encoded data bits.  The character count must agree with the
// mode and the data length, but the constraint is not checked.
func NewSegment(mode Mode, numChars int, data Bits) Segment {
	mode.check()
	if numChars < 0 {
		panic("qrsym: negative character count")
	}
	return Segment{Mode: mode, NumChars: numChars, Data: data}
}

// MakeBytes returns a segment representing the given binary data
// encoded in byte mode.  All byte slices are acceptable.
func MakeBytes(data []byte) Segment {
	var b Bits
	for _, v := range data {
		b.Append(uint32(v), 8)
	}
	return Segment{Mode: Byte, NumChars: len(data), Data: b}
}

// MakeNumeric returns a segment representing the given string of
// decimal digits encoded in numeric mode.  Digits are grouped in
// threes into 10 bit fields; a final group of 1 or 2 digits takes 4
// or 7 bits.  MakeNumeric panics if the string contains non-digit
// characters.
func MakeNumeric(text string) Segment {
	var b Bits
	accum, count := uint32(0), 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			panic("qrsym: non-numeric string")
		}
		accum = accum*10 + uint32(c-'0')
		count++
		if count == 3 {
			b.Append(accum, 10)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		b.Append(accum, count*3+1)
	}
	return Segment{Mode: Numeric, NumChars: len(text), Data: b}
}

// MakeAlphanumeric returns a segment representing the given text
// encoded in alphanumeric mode.  The characters allowed are 0 to 9,
// A to Z (uppercase only), space, dollar, percent, asterisk, plus,
// hyphen, period, slash and colon.  Pairs of characters combine as
// first*45+second into 11 bit fields; a final lone character takes 6
// bits.  MakeAlphanumeric panics if the string contains other
// characters.
func MakeAlphanumeric(text string) Segment {
	var b Bits
	accum, count := uint32(0), 0
	for i := 0; i < len(text); i++ {
		n := strings.IndexByte(alphanumericCharset, text[i])
		if n < 0 {
			panic("qrsym: non-alphanumeric string")
		}
		accum = accum*45 + uint32(n)
		count++
		if count == 2 {
			b.Append(accum, 11)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		b.Append(accum, 6)
	}
	return Segment{Mode: Alphanumeric, NumChars: len(text), Data: b}
}

// MakeECI returns a segment representing an Extended Channel
// Interpretation designator with the given assignment value.  Values
// below 128 encode in 8 bits, below 16384 in 16 bits, below 1000000
// in 24 bits; MakeECI panics on larger values.
func MakeECI(assign uint32) Segment {
	var b Bits
	switch {
	case assign < 1<<7:
		b.Append(assign, 8)
	case assign < 1<<14:
		b.Append(2, 2)
		b.Append(assign, 14)
	case assign < 1000000:
		b.Append(6, 3)
		b.Append(assign, 21)
	default:
		panic("qrsym: ECI assignment value out of range")
	}
	return Segment{Mode: ECI, NumChars: 0, Data: b}
}

// MakeSegments returns zero or more segments representing the given
// text.  A string of digits becomes one numeric segment, a string of
// alphanumeric characters one alphanumeric segment, and anything else
// one byte mode segment of the UTF-8 bytes; the empty string yields
// no segments.  Modes are never mixed within one payload.
func MakeSegments(text string) []Segment {
	switch {
	case text == "":
		return nil
	case isNumeric(text):
		return []Segment{MakeNumeric(text)}
	case isAlphanumeric(text):
		return []Segment{MakeAlphanumeric(text)}
	}
	return []Segment{MakeBytes([]byte(text))}
}

// isNumeric reports whether text can be encoded in numeric mode.
func isNumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether text can be encoded in alphanumeric
// mode.
func isAlphanumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(alphanumericCharset, text[i]) < 0 {
			return false
		}
	}
	return true
}

// TotalBits returns the number of bits needed to encode the given
// segments at the given version, including mode indicators and
// character count fields.  It returns ErrSegmentTooLong if a
// segment's character count does not fit its count field at this
// version.
func TotalBits(segs []Segment, v Version) (int, error) {
	total := 0
	for i := range segs {
		ccbits := segs[i].Mode.CountBits(v)
		if ccbits < 31 && segs[i].NumChars >= 1<<uint(ccbits) {
			return 0, ErrSegmentTooLong
		}
		total += 4 + ccbits + segs[i].Data.Len()
	}
	return total, nil
}
