// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var qrField = NewField(0x11d, 2)

func TestNewField(t *testing.T) {
	require.EqualValues(t, 1, qrField.Exp(0))
	require.EqualValues(t, 2, qrField.Exp(1))
	require.EqualValues(t, 0x1d, qrField.Exp(8)) // x^8 reduced mod 0x11d
	require.EqualValues(t, 1, qrField.Exp(255))  // the group has order 255

	for i := 0; i < 255; i++ {
		require.Equal(t, i, qrField.Log(qrField.Exp(i)))
	}
	require.Panics(t, func() { qrField.Log(0) })
}

func TestNewFieldPanics(t *testing.T) {
	require.Panics(t, func() { NewField(0xff, 2) })   // degree too low
	require.Panics(t, func() { NewField(0x211, 2) })  // degree too high
	require.Panics(t, func() { NewField(0x11d, 1) })  // not a generator
	require.Panics(t, func() { NewField(0x11c, 2) })  // reducible
}

func TestMul(t *testing.T) {
	f := qrField
	for x := 0; x < 256; x++ {
		require.EqualValues(t, 0, f.Mul(byte(x), 0))
		require.EqualValues(t, byte(x), f.Mul(byte(x), 1))
		for y := x; y < 256; y += 7 {
			want := byte(mul(x, y, 0x11d))
			require.Equal(t, want, f.Mul(byte(x), byte(y)))
			require.Equal(t, want, f.Mul(byte(y), byte(x)))
		}
	}

	// Distributive over field addition (XOR).
	for _, v := range [][3]byte{{3, 5, 7}, {0x53, 0xca, 0x0f}, {255, 254, 253}} {
		x, y, z := v[0], v[1], v[2]
		require.Equal(t, f.Mul(x, y)^f.Mul(x, z), f.Mul(x, y^z))
	}
}

func TestRSEncoderZero(t *testing.T) {
	rs := NewRSEncoder(qrField, 10)
	check := make([]byte, 10)
	rs.ECC(make([]byte, 25), check)
	require.Equal(t, make([]byte, 10), check)
}

// TestRSEncoderRoots checks the defining property of the code: the
// message polynomial with the check bytes appended evaluates to zero
// at the first c powers of the generator element.
func TestRSEncoderRoots(t *testing.T) {
	f := qrField
	for _, c := range []int{7, 10, 18, 30} {
		rs := NewRSEncoder(f, c)
		data := make([]byte, 40)
		for i := range data {
			data[i] = byte(i*37 + c)
		}
		check := make([]byte, c)
		rs.ECC(data, check)

		poly := append(append([]byte{}, data...), check...)
		for i := 0; i < c; i++ {
			root := f.Exp(i)
			acc := byte(0)
			for _, coef := range poly {
				acc = f.Mul(acc, root) ^ coef
			}
			require.EqualValues(t, 0, acc, "c=%d root=%d", c, i)
		}
	}
}

func TestRSEncoderDeterministic(t *testing.T) {
	rs := NewRSEncoder(qrField, 7)
	data := []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11}
	a := make([]byte, 7)
	b := make([]byte, 7)
	rs.ECC(data, a)
	rs.ECC(data, b)
	require.Equal(t, a, b)
	require.NotEqual(t, make([]byte, 7), a)
}

func TestRSEncoderPanics(t *testing.T) {
	require.Panics(t, func() { NewRSEncoder(qrField, 0) })
	require.Panics(t, func() { NewRSEncoder(qrField, 256) })
	rs := NewRSEncoder(qrField, 7)
	require.Panics(t, func() { rs.ECC(nil, make([]byte, 6)) })
}
