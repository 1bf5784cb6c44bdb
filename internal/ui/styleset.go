// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styleset.go - Ready lipgloss styles over a resolved theme.
//
// Consumers that compose panes, tables and boxes want lipgloss.Style
// values, not raw escape strings. StyleSet derives one style per
// semantic role from the theme palette, with lipgloss's color profile
// pinned to the resolved settings so the styles degrade exactly like
// the renderer: same quantized indices, same passthrough when color is
// off. Styles are built against a private renderer and never consult
// the ambient terminal.

package ui

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleSet is a bundle of lipgloss styles for the common semantic
// roles. The zero value is unstyled; build one with NewStyleSet.
type StyleSet struct {
	// Profile is the color profile the styles were pinned to.
	Profile termenv.Profile

	Title    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
	Accent   lipgloss.Style
	Link     lipgloss.Style
}

// NewStyleSet builds the style bundle for a theme under resolved
// settings. Colors are quantized to the active depth before lipgloss
// sees them, so the indices match Renderer output exactly. With color
// disabled the profile is pinned to Ascii and every style renders its
// text unchanged.
func NewStyleSet(theme Theme, settings Settings) StyleSet {
	profile := settings.Depth.Profile()
	if !settings.ColorEnabled {
		profile = termenv.Ascii
	}

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	fg := func(s Slot) lipgloss.Color {
		return lipglossColor(theme.Color(s), settings.Depth)
	}

	return StyleSet{
		Profile: profile,

		Title:    r.NewStyle().Foreground(fg(SlotPrimary)).Bold(true),
		Success:  r.NewStyle().Foreground(fg(SlotSuccess)).Bold(true),
		Error:    r.NewStyle().Foreground(fg(SlotError)).Bold(true),
		Warning:  r.NewStyle().Foreground(fg(SlotWarning)).Bold(true),
		Info:     r.NewStyle().Foreground(fg(SlotInfo)).Bold(true),
		Muted:    r.NewStyle().Foreground(fg(SlotMuted)),
		Emphasis: r.NewStyle().Foreground(fg(SlotEmphasis)).Bold(true),
		Accent:   r.NewStyle().Foreground(fg(SlotAccent)),
		Link:     r.NewStyle().Foreground(fg(SlotLink)).Underline(true),
	}
}

// lipglossColor renders a quantized color in the string form lipgloss
// expects: a bare palette index at 16 and 256 colors, a hex triple at
// full depth.
func lipglossColor(c Color, depth ColorDepth) lipgloss.Color {
	switch depth {
	case Depth16:
		return lipgloss.Color(strconv.Itoa(c.ANSI16()))
	case Depth256:
		return lipgloss.Color(strconv.Itoa(c.ANSI256()))
	default:
		return lipgloss.Color(c.Hex())
	}
}
