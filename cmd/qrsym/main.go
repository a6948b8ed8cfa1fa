// Copyright 2026 The qrsym Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrsym encodes text as a QR code and prints it to the
// terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"qrsym"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	lev    qrsym.Level   // error correction level
	minver qrsym.Version // minimum version
	maxver qrsym.Version // maximum version
	mask   qrsym.Mask    // mask pattern, or AutoMask
	eci    int           // ECI segment value, or -1
	border int           // quiet zone width
	latin1 bool          // convert byte mode data to Latin-1
	bytes  bool          // encode entire data in byte mode
	upper  bool          // uppercase input
	fixed  bool          // no level boosting
}{
	mask: qrsym.AutoMask,
	eci:  -1,
}

func usage() {
	getopt.CommandLine.PrintUsage(os.Stderr)
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("[string ...]")
	var help, ascii bool
	getopt.Flag(&help, 'h', "show this help")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	minver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"minimum QR code version", "ver")
	maxver := getopt.Unsigned('V', 40, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"maximum QR code version", "ver")
	mask := getopt.Signed('p', -1, &getopt.SignedLimit{Base: 0, Bits: 4, Min: -1, Max: 7},
		"mask pattern; -1 selects the best mask", "mask")
	eci := getopt.Signed('E', -1, &getopt.SignedLimit{Base: 0, Bits: 21, Min: 0, Max: 999999},
		"encode ECI segment with the given value", "eci")
	border := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 7, Min: 0, Max: 100},
		"quiet zone width in modules", "margin")
	getopt.Flag(&g.latin1, '1', "encode text as Latin-1 with an ECI segment")
	getopt.Flag(&g.bytes, '8', "encode entire data in byte mode")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.fixed, 'f', "fixed level: never boost error correction")
	getopt.Flag(&ascii, 'a', "ASCII output even on a terminal")

	getopt.Parse()
	if help {
		getopt.CommandLine.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	g.lev = qrsym.Level(strings.Index("lmqhLMQH", *lev) & 3)
	g.minver = qrsym.Version(*minver)
	g.maxver = qrsym.Version(*maxver)
	g.mask = qrsym.Mask(*mask)
	g.eci = int(*eci)
	g.border = int(*border)
	if g.minver > g.maxver {
		fmt.Fprintln(os.Stderr, "-v greater than -V")
		usage()
	}
	if g.latin1 && getopt.IsSet('E') {
		fmt.Fprintln(os.Stderr, "-1 and -E are incompatible")
		usage()
	}
	if ascii || !isatty.IsTerminal(uintptr(syscall.Stdout)) {
		output = printASCII
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	var segs []qrsym.Segment
	var err error
	switch {
	case g.latin1:
		if segs, err = qrsym.MakeLatin1(s); err != nil {
			log.Fatalln(err)
		}
	case g.bytes:
		segs = []qrsym.Segment{qrsym.MakeBytes([]byte(s))}
	default:
		segs = qrsym.MakeSegments(s)
	}
	if g.eci >= 0 {
		segs = append([]qrsym.Segment{qrsym.MakeECI(uint32(g.eci))}, segs...)
	}

	code, err := qrsym.EncodeSegmentsAdvanced(segs, g.lev,
		g.minver, g.maxver, g.mask, !g.fixed)
	if err != nil {
		log.Fatalln(err)
	}
	output(os.Stdout, code, g.border)
}

var output = printUTF8

// printUTF8 writes the code as Unicode half blocks, two rows of
// modules per line of text.  Dark modules print as background
// (spaces) so the code is scannable on dark terminals.
func printUTF8(w io.Writer, c *qrsym.Code, border int) {
	var b strings.Builder
	for y := -border; y < c.Size()+border; y += 2 {
		for x := -border; x < c.Size()+border; x++ {
			n := 0
			if !c.Module(x, y) {
				n |= 1
			}
			if !c.Module(x, y+1) {
				n |= 2
			}
			b.WriteString([4]string{" ", "▀", "▄", "█"}[n])
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

// printASCII writes the code as doubled-up ASCII characters.
func printASCII(w io.Writer, c *qrsym.Code, border int) {
	var b strings.Builder
	for y := -border; y < c.Size()+border; y++ {
		for x := -border; x < c.Size()+border; x++ {
			if c.Module(x, y) {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
