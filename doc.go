// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrsym constructs QR Code Model 2 symbols as described in
ISO/IEC 18004, supporting all versions (sizes) from 1 to 40 and all
four error correction levels.

The output of this package is the symbol itself: an immutable square
grid of dark and light modules plus the chosen version, error
correction level and mask.  Turning the grid into pixels, vector
paths or image files is left to rendering layers built on top of it.

Ways to create a Code:

  - High level: EncodeText or EncodeBinary with the payload and an
    error correction level.
  - Mid level: build a list of Segments and call EncodeSegments or
    EncodeSegmentsAdvanced for control over the version range, mask
    and error correction boosting.
  - Low level: assemble the data codewords (segment headers and
    padding included, error correction excluded) and call
    EncodeCodewords.

Simple operation:

	code, err := qrsym.EncodeText("Hello, world!", qrsym.M)
	if err != nil {
		...
	}
	for y := 0; y < code.Size(); y++ {
		for x := 0; x < code.Size(); x++ {
			paint(code.Module(x, y))
		}
	}

Manual operation:

	segs := qrsym.MakeSegments("3141592653589793238462643383")
	code, err := qrsym.EncodeSegmentsAdvanced(segs, qrsym.H, 5, 5, 2, false)

Invalid parameter values (a version outside [1,40], a mask outside
[0,7], text not encodable in the requested mode) are programmer
errors and panic.  Payloads that do not fit the requested version
range and level are reported as ordinary errors.
*/
package qrsym
