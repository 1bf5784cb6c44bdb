// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// color.go - RGB color primitives and ANSI palette quantization.
//
// Colors are plain 24-bit RGB values. Downgrading to the 16-color ANSI
// palette or the 256-color xterm palette picks the nearest entry by
// Euclidean distance in RGB space. Distances are compared as exact
// integer squares so that ties break the same way on every platform.

package ui

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. The zero value is black.
type Color struct {
	R, G, B uint8
}

// InvalidFormatError reports a string that could not be parsed as a hex
// color triple.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid color format %q: want #rrggbb or #rgb", e.Input)
}

// =============================================================================
// HEX PARSING
// =============================================================================

// ParseHex parses a hex color string. Both the 6-digit #rrggbb and the
// shorthand 3-digit #rgb forms are accepted, the leading # is optional,
// and hex digits may be upper or lower case. The shorthand form expands
// each digit by duplication, so #f2a means #ff22aa.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return Color{}, &InvalidFormatError{Input: s}
			}
			ch[i] = n<<4 | n
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil

	case 6:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, &InvalidFormatError{Input: s}
			}
			ch[i] = hi<<4 | lo
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil

	default:
		return Color{}, &InvalidFormatError{Input: s}
	}
}

// MustHex parses a hex color string and panics on failure.
// Only for package-level constants known to be valid.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as a lowercase #rrggbb string.
// The result round-trips through ParseHex.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// =============================================================================
// ANSI QUANTIZATION
// =============================================================================

// ansi16Palette is the standard xterm 16-color reference palette.
// Quantization measures against these values regardless of how the
// user's terminal actually renders the indices.
var ansi16Palette = [16]Color{
	{0x00, 0x00, 0x00}, // 0 black
	{0x80, 0x00, 0x00}, // 1 red
	{0x00, 0x80, 0x00}, // 2 green
	{0x80, 0x80, 0x00}, // 3 yellow
	{0x00, 0x00, 0x80}, // 4 blue
	{0x80, 0x00, 0x80}, // 5 magenta
	{0x00, 0x80, 0x80}, // 6 cyan
	{0xc0, 0xc0, 0xc0}, // 7 white
	{0x80, 0x80, 0x80}, // 8 bright black
	{0xff, 0x00, 0x00}, // 9 bright red
	{0x00, 0xff, 0x00}, // 10 bright green
	{0xff, 0xff, 0x00}, // 11 bright yellow
	{0x00, 0x00, 0xff}, // 12 bright blue
	{0xff, 0x00, 0xff}, // 13 bright magenta
	{0x00, 0xff, 0xff}, // 14 bright cyan
	{0xff, 0xff, 0xff}, // 15 bright white
}

// cubeLevels are the channel values of the 6x6x6 color cube
// (indices 16-231 of the 256-color palette).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ANSI16 returns the index (0-15) of the nearest standard ANSI color.
// Ties break toward the lowest index.
func (c Color) ANSI16() int {
	best := 0
	bestDist := dist2(c, ansi16Palette[0])
	for i := 1; i < len(ansi16Palette); i++ {
		if d := dist2(c, ansi16Palette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ANSI256 returns the index (16-255) of the nearest entry in the
// 256-color palette. The candidates are the nearest point of the 6x6x6
// color cube and the nearest level of the 24-step grayscale ramp; the
// lower distance wins, and an exact tie prefers the grayscale ramp
// since it renders grays more faithfully.
func (c Color) ANSI256() int {
	cubeIdx, cubeDist := c.nearestCube()
	grayIdx, grayDist := c.nearestGray()
	if grayDist <= cubeDist {
		return grayIdx
	}
	return cubeIdx
}

// nearestCube returns the palette index and squared distance of the
// closest 6x6x6 cube point. Per-channel nearest levels compose into the
// globally nearest cube point because the cube is an axis-aligned grid.
func (c Color) nearestCube() (idx, d2 int) {
	ri := nearestCubeLevel(c.R)
	gi := nearestCubeLevel(c.G)
	bi := nearestCubeLevel(c.B)
	point := Color{R: cubeLevels[ri], G: cubeLevels[gi], B: cubeLevels[bi]}
	return 16 + 36*ri + 6*gi + bi, dist2(c, point)
}

func nearestCubeLevel(v uint8) int {
	best := 0
	bestDist := absDiff(v, cubeLevels[0])
	for i := 1; i < len(cubeLevels); i++ {
		if d := absDiff(v, cubeLevels[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// nearestGray returns the palette index and squared distance of the
// closest level on the grayscale ramp (indices 232-255, values 8-238
// in steps of 10).
func (c Color) nearestGray() (idx, d2 int) {
	best := 0
	bestDist := dist2(c, grayLevel(0))
	for i := 1; i < 24; i++ {
		if d := dist2(c, grayLevel(i)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return 232 + best, bestDist
}

func grayLevel(i int) Color {
	v := uint8(8 + 10*i)
	return Color{R: v, G: v, B: v}
}

// dist2 is the squared Euclidean distance between two colors in RGB
// space. Exact integer arithmetic keeps tie comparisons deterministic.
func dist2(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// =============================================================================
// LUMINANCE
// =============================================================================

// Luminance returns the WCAG relative luminance of the color, in [0, 1].
// Channels are linearized before weighting, so #808080 comes out well
// below 0.5 even though its channels sit at the midpoint.
func (c Color) Luminance() float64 {
	r, g, b := c.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
