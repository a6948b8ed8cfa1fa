// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

// Penalty weights for the four mask evaluation rules.
const (
	penaltyN1 = 3  // runs of 5 or more same-coloured modules
	penaltyN2 = 3  // 2x2 blocks of same-coloured modules
	penaltyN3 = 40 // finder-like patterns
	penaltyN4 = 10 // dark/light imbalance, per 5% step
)

// finderPenalty tracks run lengths along one row or column to detect
// finder-like patterns (light:dark:light:dark:light in ratio
// 1:1:3:1:1 with a light border at least 4 units wide on one side).
type finderPenalty struct {
	size    int
	history [7]int // most recent run lengths, newest first
}

// add pushes a finished run length onto the history.  The initial run
// is extended by the symbol size to account for the light border.
func (p *finderPenalty) add(runLength int) {
	if p.history[0] == 0 {
		runLength += p.size
	}
	copy(p.history[1:], p.history[:6])
	p.history[0] = runLength
}

// count returns the number of finder-like patterns ending at the
// current position, 0 to 2.  It must be called immediately after a
// light run is added.
func (p *finderPenalty) count() int {
	h := &p.history
	n := h[1]
	core := n > 0 && h[2] == n && h[3] == n*3 && h[4] == n && h[5] == n
	patterns := 0
	if core && h[0] >= n*4 && h[6] >= n {
		patterns++
	}
	if core && h[6] >= n*4 && h[0] >= n {
		patterns++
	}
	return patterns
}

// terminate closes the line: the pending run is flushed, the light
// border beyond the edge is added, and the final pattern count is
// returned.
func (p *finderPenalty) terminate(runColor bool, runLength int) int {
	if runColor {
		p.add(runLength)
		runLength = 0
	}
	p.add(runLength + p.size)
	return p.count()
}

// penaltyScore returns the penalty for a size*size module grid,
// stored row-major.  Lower is better; the automatic mask choice picks
// the pattern yielding the smallest score.
func penaltyScore(modules []bool, size int) int {
	result := 0

	// Rule 1 and rule 3 along rows.
	for y := 0; y < size; y++ {
		runColor := false
		runX := 0
		fp := finderPenalty{size: size}
		for x := 0; x < size; x++ {
			if modules[y*size+x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				fp.add(runX)
				if !runColor {
					result += fp.count() * penaltyN3
				}
				runColor = modules[y*size+x]
				runX = 1
			}
		}
		result += fp.terminate(runColor, runX) * penaltyN3
	}

	// Rule 1 and rule 3 along columns.
	for x := 0; x < size; x++ {
		runColor := false
		runY := 0
		fp := finderPenalty{size: size}
		for y := 0; y < size; y++ {
			if modules[y*size+x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				fp.add(runY)
				if !runColor {
					result += fp.count() * penaltyN3
				}
				runColor = modules[y*size+x]
				runY = 1
			}
		}
		result += fp.terminate(runColor, runY) * penaltyN3
	}

	// Rule 2: 2x2 blocks of same-coloured modules.
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := modules[y*size+x]
			if c == modules[y*size+x+1] &&
				c == modules[(y+1)*size+x] &&
				c == modules[(y+1)*size+x+1] {
				result += penaltyN2
			}
		}
	}

	// Rule 4: dark/light balance.  k is the smallest integer >= 0
	// such that the dark percentage is within [45-5k, 55+5k]; size
	// is odd, so the ratio is never exactly 1/2.
	dark := 0
	for _, m := range modules {
		if m {
			dark++
		}
	}
	total := size * size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
