// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import (
	"errors"
	"fmt"
)

// ErrSegmentTooLong is returned when a segment's character count does
// not fit the character count field of any version in the allowed
// range.
var ErrSegmentTooLong = errors.New("qrsym: segment too long for its count field")

// A CapacityError is returned when the data requires more bits than
// the symbol can hold at the maximum allowed version and the
// requested error correction level.  Callers may lower the level,
// raise the maximum version, or split the data.
type CapacityError struct {
	Required  int // bits needed by the segments
	Available int // data capacity in bits
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qrsym: data length %d bits over capacity %d bits",
		e.Required, e.Available)
}
