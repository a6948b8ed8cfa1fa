// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEncodeTextBoost: 74 data bits fit version 1 at M with room to
// boost the level to Q, but not to H.
func TestEncodeTextBoost(t *testing.T) {
	code, err := EncodeText("HELLO WORLD", M)
	require.NoError(t, err)
	require.Equal(t, Version(1), code.Version())
	require.Equal(t, 21, code.Size())
	require.Equal(t, Q, code.Level())
}

func TestEncodeTextNoBoost(t *testing.T) {
	code, err := EncodeSegmentsAdvanced(MakeSegments("HELLO WORLD"), M,
		MinVersion, MaxVersion, AutoMask, false)
	require.NoError(t, err)
	require.Equal(t, Version(1), code.Version())
	require.Equal(t, M, code.Level())
}

func TestEncodeMinVersion(t *testing.T) {
	code, err := EncodeSegmentsAdvanced(MakeSegments("HELLO WORLD"), M,
		3, MaxVersion, AutoMask, true)
	require.NoError(t, err)
	require.Equal(t, Version(3), code.Version())
	require.Equal(t, 29, code.Size())
}

func TestEncodeEmpty(t *testing.T) {
	code, err := EncodeText("", L)
	require.NoError(t, err)
	require.Equal(t, Version(1), code.Version())
	require.Equal(t, H, code.Level()) // nothing to store, boosted all the way
}

// TestEncodeBinaryCapacity probes the absolute byte mode limit: 2953
// bytes fit version 40 at L, 2954 do not.
func TestEncodeBinaryCapacity(t *testing.T) {
	code, err := EncodeBinary(make([]byte, 2953), L)
	require.NoError(t, err)
	require.Equal(t, Version(40), code.Version())
	require.Equal(t, L, code.Level())

	_, err = EncodeBinary(make([]byte, 2954), L)
	var ce CapacityError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 4+16+2954*8, ce.Required)
	require.Equal(t, 2956*8, ce.Available)
}

func TestEncodeCapacityError(t *testing.T) {
	_, err := EncodeSegmentsAdvanced([]Segment{MakeBytes(make([]byte, 20))},
		L, 1, 1, AutoMask, true)
	var ce CapacityError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 172, ce.Required)
	require.Equal(t, 152, ce.Available)
	require.Equal(t,
		"qrsym: data length 172 bits over capacity 152 bits", err.Error())
}

// TestEncodeSegmentTooLong: a 256 byte segment needs a 16 bit count
// field, first available at version 10.
func TestEncodeSegmentTooLong(t *testing.T) {
	segs := []Segment{MakeBytes(make([]byte, 256))}
	_, err := EncodeSegmentsAdvanced(segs, L, 1, 9, AutoMask, true)
	require.ErrorIs(t, err, ErrSegmentTooLong)

	code, err := EncodeSegmentsAdvanced(segs, L, 1, 40, AutoMask, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, code.Version(), Version(10))
}

func TestEncodeAdvancedPanics(t *testing.T) {
	segs := MakeSegments("42")
	require.Panics(t, func() {
		EncodeSegmentsAdvanced(segs, L, 5, 3, AutoMask, true)
	})
	require.Panics(t, func() {
		EncodeSegmentsAdvanced(segs, L, 0, 40, AutoMask, true)
	})
	require.Panics(t, func() {
		EncodeSegmentsAdvanced(segs, L, 1, 41, AutoMask, true)
	})
	require.Panics(t, func() {
		EncodeSegmentsAdvanced(segs, Level(9), 1, 40, AutoMask, true)
	})
	require.Panics(t, func() {
		EncodeSegmentsAdvanced(segs, L, 1, 40, Mask(8), true)
	})
}

// TestEncodeMultiSegment mixes an ECI designator with a byte segment,
// the shape MakeLatin1 produces.
func TestEncodeMultiSegment(t *testing.T) {
	segs, err := MakeLatin1("Grüße, Welt")
	require.NoError(t, err)
	code, err := EncodeSegments(segs, M)
	require.NoError(t, err)
	require.Equal(t, Version(1), code.Version())
}

func TestEncodeNumericCapacity(t *testing.T) {
	// 7089 digits is the absolute numeric mode maximum, at version 40
	// level L: 4 + 14 + 23630 = 23648 bits exactly.
	code, err := EncodeText(strings.Repeat("9", 7089), L)
	require.NoError(t, err)
	require.Equal(t, Version(40), code.Version())
	require.Equal(t, L, code.Level())

	_, err = EncodeText(strings.Repeat("9", 7090), L)
	var ce CapacityError
	require.ErrorAs(t, err, &ce)
}
