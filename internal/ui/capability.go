// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// capability.go - Terminal capability detection.
//
// USABILITY: capability detection for graceful output degradation
//
// Detect reads process environment and file-descriptor state only. It
// never writes to the terminal, so there is no OSC round-trip and no
// prompt corruption; repeated calls in an unchanged environment return
// identical snapshots. Capability describes what the terminal can do,
// not what the user wants: preference resolution layers on top.

package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// COLOR DEPTH
// =============================================================================

// ColorDepth is the richest color representation a terminal accepts.
type ColorDepth int

const (
	DepthNone ColorDepth = iota
	Depth16
	Depth256
	DepthTrueColor
)

func (d ColorDepth) String() string {
	switch d {
	case DepthNone:
		return "none"
	case Depth16:
		return "ansi16"
	case Depth256:
		return "ansi256"
	case DepthTrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// Profile maps a color depth onto the matching termenv profile.
func (d ColorDepth) Profile() termenv.Profile {
	switch d {
	case Depth16:
		return termenv.ANSI
	case Depth256:
		return termenv.ANSI256
	case DepthTrueColor:
		return termenv.TrueColor
	default:
		return termenv.Ascii
	}
}

// =============================================================================
// BACKGROUND CLASS
// =============================================================================

// Background classifies the terminal background when a hint exists.
type Background int

const (
	BackgroundUnknown Background = iota
	BackgroundDark
	BackgroundLight
)

func (b Background) String() string {
	switch b {
	case BackgroundDark:
		return "dark"
	case BackgroundLight:
		return "light"
	default:
		return "unknown"
	}
}

// =============================================================================
// CAPABILITY SNAPSHOT
// =============================================================================

// Capability is an immutable snapshot of what the terminal supports.
type Capability struct {
	Depth      ColorDepth
	Unicode    bool
	IsTTY      bool
	Background Background
}

// Detect probes the terminal and returns a capability snapshot.
// Environment variables and stdout TTY state are the only inputs.
func Detect() Capability {
	return Capability{
		Depth:      detectDepth(),
		Unicode:    detectUnicode(),
		IsTTY:      term.IsTerminal(int(os.Stdout.Fd())),
		Background: detectBackground(),
	}
}

// detectDepth reads the conventional color signals. NO_COLOR (present
// with any value, empty included) zeroes the depth unless FORCE_COLOR
// is also present; FORCE_COLOR floors the result at 16 colors so a
// forced-on renderer always has a palette to work with.
func detectDepth() ColorDepth {
	_, force := os.LookupEnv("FORCE_COLOR")
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor && !force {
		return DepthNone
	}

	depth := DepthNone
	termType := os.Getenv("TERM")
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case colorTerm == "truecolor" || colorTerm == "24bit":
		depth = DepthTrueColor
	case strings.Contains(termType, "256color"):
		depth = Depth256
	case termType != "" && termType != "dumb":
		depth = Depth16
	}

	if force && depth == DepthNone {
		depth = Depth16
	}
	return depth
}

// detectUnicode decides whether glyphs beyond ASCII are safe. A dumb
// terminal never gets them; otherwise the first set locale variable
// (LC_ALL, LC_CTYPE, LANG, in POSIX precedence) must name UTF-8. With
// no locale hint at all, Unicode is assumed.
func detectUnicode() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	for _, key := range [...]string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			upper := strings.ToUpper(v)
			return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
		}
	}
	return true
}

// detectBackground classifies the terminal background from environment
// hints: COLORFGBG first, then terminal-program identities.
func detectBackground() Background {
	if bg, ok := backgroundFromColorFgBg(os.Getenv("COLORFGBG")); ok {
		return bg
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app":
		if strings.Contains(strings.ToLower(os.Getenv("ITERM_PROFILE")), "light") {
			return BackgroundLight
		}
		return BackgroundDark
	case "Apple_Terminal":
		return BackgroundDark
	}

	// Windows Terminal ships with dark defaults.
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return BackgroundDark
	}

	return BackgroundUnknown
}

// backgroundFromColorFgBg parses the "fg;bg" (or "fg;default;bg") hint
// some terminals export. The trailing field is an ANSI palette index;
// its relative luminance against a 0.5 threshold decides the class.
func backgroundFromColorFgBg(v string) (Background, bool) {
	if v == "" {
		return BackgroundUnknown, false
	}
	parts := strings.Split(v, ";")
	if len(parts) < 2 {
		return BackgroundUnknown, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || idx < 0 || idx > 255 {
		return BackgroundUnknown, false
	}

	rgb := termenv.ConvertToRGB(termenv.ANSI256Color(idx))
	c := Color{
		R: uint8(rgb.R*255 + 0.5),
		G: uint8(rgb.G*255 + 0.5),
		B: uint8(rgb.B*255 + 0.5),
	}
	if c.Luminance() < 0.5 {
		return BackgroundDark, true
	}
	return BackgroundLight, true
}
