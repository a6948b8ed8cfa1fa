// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

// EncodeText returns a symbol representing the given text at the
// given error correction level.  The smallest version that fits is
// chosen automatically, the level may be boosted if that costs
// nothing, and the mask is selected by penalty score.
//
// As a conservative upper bound, EncodeText succeeds for strings of
// up to 738 characters at level L.
func EncodeText(text string, level Level) (*Code, error) {
	return EncodeSegments(MakeSegments(text), level)
}

// EncodeBinary returns a symbol representing the given data, encoded
// in byte mode regardless of content, at the given error correction
// level.  At most 2953 bytes fit.  Version, boosted level and mask
// are chosen as in EncodeText.
func EncodeBinary(data []byte, level Level) (*Code, error) {
	return EncodeSegments([]Segment{MakeBytes(data)}, level)
}

// EncodeSegments returns a symbol representing the given segments at
// the given error correction level.  Version, boosted level and mask
// are chosen as in EncodeText.
func EncodeSegments(segs []Segment, level Level) (*Code, error) {
	return EncodeSegmentsAdvanced(segs, level, MinVersion, MaxVersion,
		AutoMask, true)
}

// EncodeSegmentsAdvanced returns a symbol representing the given
// segments with full control over the encoding parameters: the
// smallest version in [minVersion, maxVersion] that fits is chosen;
// mask either forces a pattern or, if AutoMask, selects the pattern
// with the lowest penalty score; if boost is true the error
// correction level is raised as far as the chosen version allows
// without growing.
//
// It returns ErrSegmentTooLong if a segment's character count fits no
// count field in the version range, or a CapacityError if the data
// needs more bits than the largest allowed version can hold.
func EncodeSegmentsAdvanced(segs []Segment, level Level, minVersion,
	maxVersion Version, mask Mask, boost bool) (*Code, error) {
	minVersion.check()
	maxVersion.check()
	if minVersion > maxVersion {
		panic("qrsym: empty version range")
	}
	level.check()
	mask.check()

	// Find the smallest version whose capacity fits the segments.
	// The required bit count depends on the version through the
	// character count field widths.
	version := minVersion
	var used int
	for {
		capacity := version.DataCodewords(level) * 8
		n, err := TotalBits(segs, version)
		if err == nil && n <= capacity {
			used = n
			break
		}
		if version >= maxVersion {
			if err != nil {
				return nil, err
			}
			return nil, CapacityError{Required: n, Available: capacity}
		}
		version++
	}

	// Boost the error correction level while the data still fits in
	// the chosen version.  L is never boosted from; the version never
	// changes.
	if boost {
		for _, l := range [...]Level{M, Q, H} {
			if used <= version.DataCodewords(l)*8 {
				level = l
			}
		}
	}

	// Concatenate the segments: mode indicator, character count
	// field, data bits.
	var b Bits
	for i := range segs {
		seg := &segs[i]
		b.Append(seg.Mode.indicator(), 4)
		b.Append(uint32(seg.NumChars), seg.Mode.CountBits(version))
		b.AppendBits(&seg.Data)
	}
	if b.Len() != used {
		panic("qrsym: segment encoding internal error")
	}

	// Terminator of up to 4 zero bits, capped by the remaining
	// capacity, then zero padding to the next byte boundary.
	capacity := version.DataCodewords(level) * 8
	b.Append(0, min(4, capacity-b.Len()))
	b.Append(0, -b.Len()&7)

	// Alternating pad bytes up to the data capacity.
	for pad := uint32(0xec); b.Len() < capacity; pad ^= 0xec ^ 0x11 {
		b.Append(pad, 8)
	}

	return EncodeCodewords(version, level, b.Bytes(), mask), nil
}
