// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

// Bits is an append-only sequence of bits packed into bytes in big
// endian order, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// Len returns the length of b in bits.
func (b *Bits) Len() int {
	return b.nbit
}

// Bytes returns the bits packed into bytes.  Bytes panics if the
// length of b is not a multiple of 8.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qrsym: fractional byte")
	}
	return b.b
}

// Append appends the n lowest order bits of v, most significant bit
// first.  It panics unless 0 <= n <= 31 and v < 1<<n.
func (b *Bits) Append(v uint32, n int) {
	if uint(n) > 31 || v>>uint(n) != 0 {
		panic("qrsym: bit field out of range")
	}
	for i := n - 1; i >= 0; i-- {
		if b.nbit&7 == 0 {
			b.b = append(b.b, 0)
		}
		b.b[b.nbit>>3] |= byte(v>>uint(i)&1) << (7 &^ b.nbit)
		b.nbit++
	}
}

// AppendBits appends the contents of o to b.
func (b *Bits) AppendBits(o *Bits) {
	n := o.nbit
	for _, v := range o.b {
		if n < 8 {
			b.Append(uint32(v)>>(8-n), n)
			break
		}
		b.Append(uint32(v), 8)
		n -= 8
	}
}
