// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsym

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ECI assignment values for common character encodings.
const (
	Latin1ECI   = 3  // ISO 8859-1
	ShiftJISECI = 20 // Shift JIS
	UTF8ECI     = 26 // UTF-8
)

// MakeLatin1 returns an ECI designator segment followed by a byte
// mode segment holding the given UTF-8 text transcoded to ISO 8859-1.
// It returns an error if the text contains characters outside
// Latin-1.
func MakeLatin1(text string) ([]Segment, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("qrsym: non-latin-1 string %#q", text)
	}
	return []Segment{MakeECI(Latin1ECI), MakeBytes([]byte(s))}, nil
}
