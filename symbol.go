// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import (
	"golang.org/x/sync/errgroup"

	"qrsym/gf256"
)

// Field is the field for QR error correction: GF(256) with reduction
// polynomial x^8+x^4+x^3+x^2+1 and generator element 2.
var Field = gf256.NewField(0x11d, 2)

// A Code is a finished QR code symbol: an immutable square grid of
// dark and light modules plus its construction parameters.
type Code struct {
	version Version
	size    int
	level   Level
	mask    Mask
	modules []bool // row-major, true is dark
}

// Version returns the symbol's version, in [1, 40].
func (c *Code) Version() Version { return c.version }

// Size returns the number of modules on a side, in [21, 177].
func (c *Code) Size() int { return c.size }

// Level returns the symbol's error correction level.
func (c *Code) Level() Level { return c.level }

// Mask returns the symbol's mask pattern, in [0, 7], even if the
// symbol was created with automatic mask selection.
func (c *Code) Mask() Mask { return c.mask }

// Module returns the colour of the module at (x, y), true for dark.
// The top left corner has the coordinates (0, 0).  Out of bounds
// coordinates are light.
func (c *Code) Module(x, y int) bool {
	return 0 <= x && x < c.size && 0 <= y && y < c.size &&
		c.modules[y*c.size+x]
}

// A builder accumulates the module grid during construction.  The
// isFunc grid marks finder, timing, alignment, format and version
// modules, which carry no data and are excluded from masking; it is
// discarded once the symbol is finished.
type builder struct {
	version Version
	size    int
	level   Level
	modules []bool
	isFunc  []bool
}

// EncodeCodewords creates a symbol with the given version, error
// correction level, data codewords and mask.  The codewords must
// include segment headers and padding but no error correction; their
// count must equal version.DataCodewords(level), or EncodeCodewords
// panics.  mask is AutoMask or a fixed pattern in [0, 7].
//
// This is a low-level API that most users should not use directly;
// see EncodeSegments for the mid-level one.
func EncodeCodewords(version Version, level Level, data []byte, mask Mask) *Code {
	version.check()
	level.check()
	mask.check()

	size := version.Size()
	b := &builder{
		version: version,
		size:    size,
		level:   level,
		modules: make([]bool, size*size), // initially all light
		isFunc:  make([]bool, size*size),
	}

	b.drawFunctionPatterns()
	b.drawCodewords(b.addECCAndInterleave(data))

	if mask == AutoMask {
		mask = b.chooseMask()
	}
	b.applyMask(b.modules, mask)
	b.drawFormatBits(mask, b.setFunction)

	return &Code{
		version: version,
		size:    size,
		level:   level,
		mask:    mask,
		modules: b.modules,
	}
}

// setFunction sets the colour of a module and marks it as a function
// module.  Coordinates must be in bounds.
func (b *builder) setFunction(x, y int, dark bool) {
	b.modules[y*b.size+x] = dark
	b.isFunc[y*b.size+x] = true
}

// drawFunctionPatterns draws and marks all function modules for the
// builder's version: timing patterns, the three finder patterns,
// alignment patterns, placeholder format bits and version bits.
func (b *builder) drawFunctionPatterns() {
	size := b.size

	// Timing patterns on row and column 6, alternating starting dark.
	for i := 0; i < size; i++ {
		b.setFunction(6, i, i%2 == 0)
		b.setFunction(i, 6, i%2 == 0)
	}

	// The three finder patterns overwrite the ends of the timing
	// patterns; the bottom right corner has none.
	b.drawFinderPattern(3, 3)
	b.drawFinderPattern(size-4, 3)
	b.drawFinderPattern(3, size-4)

	// Alignment patterns at every coordinate pair except the three
	// finder corners.
	pos := b.alignmentPatternPositions()
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			b.drawAlignmentPattern(pos[i], pos[j])
		}
	}

	// Reserve the format strips with a placeholder; the real bits are
	// drawn once the mask is chosen.
	b.drawFormatBits(0, b.setFunction)
	b.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern including the border
// separator, with the centre module at (x, y).  Modules may fall out
// of bounds and are clipped.
func (b *builder) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= b.size || yy < 0 || yy >= b.size {
				continue
			}
			dist := max(abs(dx), abs(dy)) // Chebyshev distance
			b.setFunction(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern with the centre
// module at (x, y).  All modules must be in bounds.
func (b *builder) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			b.setFunction(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// alignmentPatternPositions returns the ascending list of centre
// coordinates of alignment patterns for the builder's version, used
// on both axes.
func (b *builder) alignmentPatternPositions() []int {
	ver := int(b.version)
	if ver == 1 {
		return nil
	}
	numAlign := ver/7 + 2
	step := (ver*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	if ver == 32 {
		step = 26
	}
	pos := make([]int, numAlign)
	pos[0] = 6
	for i, p := 1, b.size-7; i < numAlign; i++ {
		pos[numAlign-i] = p
		p -= step
	}
	return pos
}

// formatInfo returns the 15 format bits for the given level and mask:
// a 5-bit payload, a 10-bit BCH remainder over polynomial 0x537, XOR
// masked with 0x5412.
func formatInfo(level Level, mask Mask) uint32 {
	data := level.formatBits()<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	return (data<<10 | rem) ^ 0x5412
}

// drawFormatBits draws the two copies of the format bits for the
// given mask through put, which receives coordinates and the module
// colour.  The always-dark module above the bottom left finder
// pattern is drawn here too.
func (b *builder) drawFormatBits(mask Mask, put func(x, y int, dark bool)) {
	bits := formatInfo(b.level, mask)
	at := func(i int) bool { return bits>>uint(i)&1 != 0 }

	// First copy, around the top left finder pattern.
	for i := 0; i < 6; i++ {
		put(8, i, at(i))
	}
	put(8, 7, at(6))
	put(8, 8, at(7))
	put(7, 8, at(8))
	for i := 9; i < 15; i++ {
		put(14-i, 8, at(i))
	}

	// Second copy, along the right and bottom edges.
	size := b.size
	for i := 0; i < 8; i++ {
		put(size-1-i, 8, at(i))
	}
	for i := 8; i < 15; i++ {
		put(8, size-15+i, at(i))
	}
	put(8, size-8, true) // always dark
}

// drawVersion draws the two copies of the version bits for versions 7
// and up: a 6-bit payload and a 12-bit BCH remainder over polynomial
// 0x1f25.
func (b *builder) drawVersion() {
	if b.version < 7 {
		return
	}
	data := uint32(b.version)
	rem := data
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1f25
	}
	bits := data<<12 | rem // 18 bits

	for i := 0; i < 18; i++ {
		dark := bits>>uint(i)&1 != 0
		a := b.size - 11 + i%3
		c := i / 3
		b.setFunction(a, c, dark)
		b.setFunction(c, a, dark)
	}
}

// addECCAndInterleave splits the data codewords into blocks, appends
// Reed-Solomon error correction codewords to each, and interleaves
// the blocks' bytes round-robin into the final codeword sequence.
func (b *builder) addECCAndInterleave(data []byte) []byte {
	if len(data) != b.version.DataCodewords(b.level) {
		panic("qrsym: wrong data codeword count")
	}

	numBlocks := int(numErrorCorrectionBlocks[b.level.ordinal()][b.version])
	eccLen := int(eccCodewordsPerBlock[b.level.ordinal()][b.version])
	raw := b.version.RawDataModules() / 8
	numShort := numBlocks - raw%numBlocks
	blockLen := raw / numBlocks // length of a short block, with ECC

	// Short blocks get one implicit zero data byte so all blocks
	// align during interleaving; it is skipped on output.
	rs := gf256.NewRSEncoder(Field, eccLen)
	blocks := make([][]byte, numBlocks)
	k := 0
	for i := range blocks {
		n := blockLen - eccLen
		if i >= numShort {
			n++
		}
		block := make([]byte, blockLen+1)
		copy(block, data[k:k+n])
		rs.ECC(data[k:k+n], block[blockLen+1-eccLen:])
		k += n
		blocks[i] = block
	}

	result := make([]byte, 0, raw)
	for i := 0; i <= blockLen; i++ {
		for j, block := range blocks {
			if i != blockLen-eccLen || j >= numShort {
				result = append(result, block[i])
			}
		}
	}
	return result
}

// drawCodewords draws the data and error correction codewords onto
// the non-function modules in zigzag scan order: column pairs right
// to left, alternating upward and downward, most significant bit of
// each byte first.  Remainder modules beyond the last bit stay light.
func (b *builder) drawCodewords(data []byte) {
	if len(data) != b.version.RawDataModules()/8 {
		panic("qrsym: wrong codeword count")
	}
	size := b.size
	i := 0 // bit index into data
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 { // column 6 is the vertical timing pattern
			right = 5
		}
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				y := vert
				if (right+1)&2 == 0 { // scanning upward
					y = size - 1 - vert
				}
				if !b.isFunc[y*size+x] && i < len(data)*8 {
					b.modules[y*size+x] = data[i>>3]>>(7&^i)&1 != 0
					i++
				}
			}
		}
	}
	if i != len(data)*8 {
		panic("qrsym: codeword placement internal error")
	}
}

// applyMask XORs the given mask pattern over the non-function modules
// of grid.  Applying the same mask twice restores the grid.
func (b *builder) applyMask(grid []bool, mask Mask) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			i := y*b.size + x
			if mask.invert(x, y) && !b.isFunc[i] {
				grid[i] = !grid[i]
			}
		}
	}
}

// chooseMask scores all 8 mask patterns and returns the one with the
// lowest penalty, the lowest pattern number winning ties.  Each
// candidate is evaluated on its own snapshot of the grid, so the
// evaluations run in parallel.
func (b *builder) chooseMask() Mask {
	var scores [8]int
	var g errgroup.Group
	for m := Mask(0); m < 8; m++ {
		m := m
		g.Go(func() error {
			grid := make([]bool, len(b.modules))
			copy(grid, b.modules)
			b.applyMask(grid, m)
			b.drawFormatBits(m, func(x, y int, dark bool) {
				grid[y*b.size+x] = dark
			})
			scores[m] = penaltyScore(grid, b.size)
			return nil
		})
	}
	_ = g.Wait() // the scoring goroutines never fail

	best := Mask(0)
	for m := Mask(1); m < 8; m++ {
		if scores[m] < scores[best] {
			best = m
		}
	}
	return best
}
