// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and Reed-Solomon error correction coding over it.
package gf256

// A Field represents GF(256) defined by a given reduction polynomial
// and generator element.  Multiplication goes through exp/log tables.
type Field struct {
	exp [510]byte // exp[i] = gen**i, doubled to avoid mod 255
	log [256]byte // log[exp[i]] = i, log[0] unused
}

// NewField returns the field GF(256) for the given reduction
// polynomial and generator element.  The polynomial must be degree 8
// and irreducible, and gen must generate the multiplicative group;
// NewField panics otherwise.
func NewField(poly, gen int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: reduction polynomial out of range")
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i > 0 {
			panic("gf256: generator element does not generate the field")
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, gen, poly)
	}
	if x != 1 {
		panic("gf256: reduction polynomial is reducible")
	}
	f.log[0] = 255 // log(0) is undefined
	return &f
}

// mul multiplies bit-by-bit modulo poly, without tables.
// Used only while building the field.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Exp returns the generator element raised to the power e.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns the discrete logarithm of x.  Log panics if x is 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log(0)")
	}
	return int(f.log[x])
}

// Mul returns the product of two field elements.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder computes Reed-Solomon error correction codewords
// over a field for a fixed number of check bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial coefficients, high to low, sans leading 1
}

// NewRSEncoder returns an encoder producing c error correction bytes.
// The generator polynomial is the product (x - gen**0)(x - gen**1)
// ... (x - gen**(c-1)); the leading coefficient, always 1, is dropped.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 255 {
		panic("gf256: invalid check byte count")
	}
	gen := make([]byte, c)
	gen[c-1] = 1 // the monomial x**0
	root := byte(1)
	for i := 0; i < c; i++ {
		// Multiply the current product by (x - root).
		for j := range gen {
			gen[j] = f.Mul(gen[j], root)
			if j+1 < c {
				gen[j] ^= gen[j+1]
			}
		}
		root = f.Mul(root, f.Exp(1))
	}
	return &RSEncoder{f: f, c: c, gen: gen}
}

// ECC writes the error correction codewords for data into check,
// whose length must equal the encoder's check byte count.
// The checkwords are the remainder of the polynomial division of
// data (shifted up by c positions) by the generator polynomial.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: wrong check byte count")
	}
	for i := range check {
		check[i] = 0
	}
	for _, b := range data {
		factor := b ^ check[0]
		copy(check, check[1:])
		check[rs.c-1] = 0
		if factor == 0 {
			continue
		}
		lf := rs.f.Log(factor)
		for j, g := range rs.gen {
			if g != 0 {
				check[j] ^= rs.f.exp[lf+int(rs.f.log[g])]
			}
		}
	}
}
