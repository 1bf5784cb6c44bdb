// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"
	"testing"
)

// =============================================================================
// HEX PARSING TESTS
// =============================================================================

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ff0000", Color{255, 0, 0}},
		{"ff0000", Color{255, 0, 0}},
		{"#00ff00", Color{0, 255, 0}},
		{"#0000ff", Color{0, 0, 255}},
		{"#FFFFFF", Color{255, 255, 255}},
		{"#000000", Color{0, 0, 0}},
		{"#64b5f6", Color{100, 181, 246}},
		{"#abc", Color{0xaa, 0xbb, 0xcc}},
		{"abc", Color{0xaa, 0xbb, 0xcc}},
		{"#F2A", Color{0xff, 0x22, 0xaa}},
		{"#fff", Color{255, 255, 255}},
		{"#000", Color{0, 0, 0}},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.input)
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []string{
		"",
		"#",
		"#f",
		"#ff",
		"#ffff",
		"#fffff",
		"#fffffff",
		"#gggggg",
		"#12345z",
		"#zzz",
		"not a color",
		"# ff0000",
		"0x102030",
	}

	for _, input := range tests {
		_, err := ParseHex(input)
		if err == nil {
			t.Errorf("ParseHex(%q) expected error, got nil", input)
			continue
		}
		var formatErr *InvalidFormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("ParseHex(%q) error type = %T, want *InvalidFormatError", input, err)
			continue
		}
		if formatErr.Input != input {
			t.Errorf("ParseHex(%q) error input = %q, want %q", input, formatErr.Input, input)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	tests := []Color{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{100, 181, 246},
		{18, 18, 18},
		{0xab, 0xcd, 0xef},
		{1, 2, 3},
	}

	for _, c := range tests {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", c.Hex(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseHex(%q) = %v, want %v", c.Hex(), got, c)
		}
	}
}

func TestHexLowercase(t *testing.T) {
	c := Color{0xAB, 0xCD, 0xEF}
	if got := c.Hex(); got != "#abcdef" {
		t.Errorf("Hex() = %q, want %q", got, "#abcdef")
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex(\"bogus\") should panic")
		}
	}()
	MustHex("bogus")
}

// =============================================================================
// ANSI16 QUANTIZATION TESTS
// =============================================================================

func TestANSI16(t *testing.T) {
	tests := []struct {
		color Color
		want  int
	}{
		{Color{0, 0, 0}, 0},         // exact black
		{Color{128, 0, 0}, 1},       // exact dark red
		{Color{0, 128, 0}, 2},       // exact dark green
		{Color{128, 128, 0}, 3},     // exact dark yellow
		{Color{0, 0, 128}, 4},       // exact dark blue
		{Color{192, 192, 192}, 7},   // exact white
		{Color{128, 128, 128}, 8},   // exact bright black
		{Color{255, 0, 0}, 9},       // exact bright red
		{Color{255, 255, 0}, 11},    // exact bright yellow
		{Color{0, 0, 255}, 12},      // exact bright blue
		{Color{255, 255, 255}, 15},  // exact bright white
		{Color{250, 10, 5}, 9},      // near bright red
		{Color{10, 10, 10}, 0},      // near black
		{Color{200, 200, 200}, 7},   // near white
	}

	for _, tc := range tests {
		if got := tc.color.ANSI16(); got != tc.want {
			t.Errorf("ANSI16(%v) = %d, want %d", tc.color, got, tc.want)
		}
	}
}

func TestANSI16TieBreaksLow(t *testing.T) {
	// (64,0,0) is equidistant from black (index 0) and dark red
	// (index 1); the lower index must win.
	c := Color{64, 0, 0}
	if got := c.ANSI16(); got != 0 {
		t.Errorf("ANSI16(%v) = %d, want 0 (lowest index on tie)", c, got)
	}
}

// =============================================================================
// ANSI256 QUANTIZATION TESTS
// =============================================================================

func TestANSI256(t *testing.T) {
	tests := []struct {
		color Color
		want  int
	}{
		{Color{0, 0, 0}, 16},         // cube origin
		{Color{255, 255, 255}, 231},  // cube max corner
		{Color{255, 0, 0}, 196},      // cube (5,0,0)
		{Color{0, 255, 0}, 46},       // cube (0,5,0)
		{Color{0, 0, 255}, 21},       // cube (0,0,5)
		{Color{95, 135, 175}, 67},    // exact cube point (1,2,3)
		{Color{8, 8, 8}, 232},        // first gray ramp level
		{Color{238, 238, 238}, 255},  // last gray ramp level
		{Color{128, 128, 128}, 244},  // mid gray lands on the ramp
		{Color{47, 47, 47}, 236},     // off-ramp gray still prefers ramp
	}

	for _, tc := range tests {
		if got := tc.color.ANSI256(); got != tc.want {
			t.Errorf("ANSI256(%v) = %d, want %d", tc.color, got, tc.want)
		}
	}
}

func TestANSI256TiePrefersGrayscale(t *testing.T) {
	// (4,4,4) is exactly as far from cube point (0,0,0) as from gray
	// ramp level 8; the grayscale ramp must win the tie.
	c := Color{4, 4, 4}
	if got := c.ANSI256(); got != 232 {
		t.Errorf("ANSI256(%v) = %d, want 232 (grayscale on tie)", c, got)
	}
}

func TestANSI256Range(t *testing.T) {
	// Every input must land in the extended palette, never the first 16.
	tests := []Color{
		{0, 0, 0},
		{255, 255, 255},
		{1, 2, 3},
		{100, 181, 246},
		{50, 60, 70},
		{200, 100, 0},
	}

	for _, c := range tests {
		got := c.ANSI256()
		if got < 16 || got > 255 {
			t.Errorf("ANSI256(%v) = %d, want index in [16, 255]", c, got)
		}
	}
}

// =============================================================================
// LUMINANCE TESTS
// =============================================================================

func TestLuminance(t *testing.T) {
	tests := []struct {
		color Color
		min   float64
		max   float64
	}{
		{Color{0, 0, 0}, 0, 0.001},       // black
		{Color{255, 255, 255}, 0.999, 1}, // white
		{Color{128, 128, 128}, 0.1, 0.3}, // mid gray linearizes below 0.5
		{Color{255, 255, 0}, 0.8, 1},     // yellow is bright
		{Color{0, 0, 255}, 0, 0.2},       // pure blue is dim
	}

	for _, tc := range tests {
		got := tc.color.Luminance()
		if got < tc.min || got > tc.max {
			t.Errorf("Luminance(%v) = %f, want in [%f, %f]", tc.color, got, tc.min, tc.max)
		}
	}
}
