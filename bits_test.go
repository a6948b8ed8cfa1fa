// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsAppend(t *testing.T) {
	var b Bits
	require.Equal(t, 0, b.Len())

	b.Append(0x5, 3) // 101
	require.Equal(t, 3, b.Len())
	require.Equal(t, []byte{0xa0}, b.b)

	b.Append(0x1, 1) // 1011
	require.Equal(t, 4, b.Len())
	require.Equal(t, []byte{0xb0}, b.b)

	b.Append(0, 0) // no-op
	require.Equal(t, 4, b.Len())

	b.Append(0xf, 4)
	require.Equal(t, []byte{0xbf}, b.Bytes())

	b.Append(0x1234, 16)
	require.Equal(t, []byte{0xbf, 0x12, 0x34}, b.Bytes())
}

func TestBitsAppendRange(t *testing.T) {
	var b Bits
	require.Panics(t, func() { b.Append(4, 2) })  // value too wide
	require.Panics(t, func() { b.Append(0, 32) }) // width too large
	require.Panics(t, func() { b.Append(0, -1) })
	require.NotPanics(t, func() { b.Append(1<<31-1, 31) })
	require.Equal(t, 31, b.Len())
}

func TestBitsBytesFractional(t *testing.T) {
	var b Bits
	b.Append(0x55, 7)
	require.Panics(t, func() { b.Bytes() })
	b.Append(0, 1)
	require.Equal(t, []byte{0xaa}, b.Bytes())
}

func TestBitsAppendBits(t *testing.T) {
	var o Bits
	o.Append(0x2c5, 11)

	var got, want Bits
	got.Append(0x5, 3)
	got.AppendBits(&o)
	want.Append(0x5, 3)
	want.Append(0x2c5, 11)
	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.b, got.b)

	// Appending an empty sequence changes nothing.
	var empty Bits
	got.AppendBits(&empty)
	require.Equal(t, want.b, got.b)
}
