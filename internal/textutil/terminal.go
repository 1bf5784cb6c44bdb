// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal geometry for wrapping and layout.
//
// USABILITY: degraded environments get sane defaults. Pipes, CI jobs
// and dumb terminals have no window size; callers still need a width
// to wrap against, so detection failures fall back to 80x24 and
// wrapping width never drops below the point where prose becomes
// unreadable.

package textutil

import (
	"os"

	"golang.org/x/term"
)

const (
	// DefaultWidth is the fallback width when detection fails.
	DefaultWidth = 80

	// DefaultHeight is the fallback height when detection fails.
	DefaultHeight = 24

	// MinWidth is the narrowest width returned for wrapping.
	MinWidth = 40
)

// TerminalWidth returns the current terminal width in columns,
// DefaultWidth when stdout has no measurable size, and never less
// than MinWidth.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	if w < MinWidth {
		return MinWidth
	}
	return w
}

// TerminalSize returns the terminal width and height, or the 80x24
// defaults when stdout has no measurable size.
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
