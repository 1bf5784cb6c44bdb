// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package textutil provides width-aware text helpers for terminal
// output.
//
// UNICODE: all measurements are display columns, not bytes or runes.
// Double-width characters (CJK, most emoji) count as two columns, so
// wrapped and padded output lines up in the terminal regardless of
// script. Input is expected to be unstyled text; measure before
// styling, not after.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Wrap word-wraps s to the given display width. Existing newlines are
// preserved. A width of zero or less returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Truncate shortens s to at most width display columns, appending
// "..." when something was cut. Widths of three or less leave no room
// for the tail, so the cut is bare; zero or negative widths return the
// empty string.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	if width <= 3 {
		return truncate.String(s, uint(width))
	}
	return truncate.StringWithTail(s, uint(width), "...")
}

// PadRight pads s with spaces to the given display width. Strings
// already at or past the width come back unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Center pads s with spaces on both sides to the given display width.
// An odd leftover column goes to the right.
func Center(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
