// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// style.go - The styled text renderer.
//
// Renderer is the one place escape sequences come from. Everything
// above it deals in slots and decorations; everything below it is
// termenv assembling the final bytes. Colors are quantized here with
// the nearest-match logic from color.go, then handed to termenv as
// finished values, so the degradation path is identical no matter
// which terminal library sits underneath.

package ui

import "github.com/muesli/termenv"

// Decoration is a text attribute applied on top of a slot color.
// Decorations form a set: duplicates collapse and the application
// order never changes the rendered bytes.
type Decoration int

const (
	Bold Decoration = iota
	Italic
	Underline
	Dim
	Reverse
	Strikethrough

	numDecorations
)

var decorationNames = [numDecorations]string{
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underline",
	Dim:           "dim",
	Reverse:       "reverse",
	Strikethrough: "strikethrough",
}

func (d Decoration) String() string {
	if d < 0 || d >= numDecorations {
		return "decoration(?)"
	}
	return decorationNames[d]
}

// Renderer pairs a theme with resolved settings and renders styled
// text. Renderers are immutable values; construct one per resolved
// context and share it across goroutines freely.
type Renderer struct {
	theme    Theme
	settings Settings
}

// NewRenderer builds a renderer for a theme at a fixed settings
// snapshot.
func NewRenderer(theme Theme, settings Settings) Renderer {
	return Renderer{theme: theme, settings: settings}
}

func (r Renderer) Theme() Theme       { return r.theme }
func (r Renderer) Settings() Settings { return r.settings }

// =============================================================================
// STYLING
// =============================================================================

// Style renders text in the color of a slot with optional decorations.
//
// When color output is disabled or the depth is DepthNone the input is
// returned byte for byte: no escape codes, no reset sequence,
// decorations ignored. Otherwise the slot color is quantized to the
// active depth and the escape sequence is assembled through termenv.
// The same inputs always produce the same bytes.
func (r Renderer) Style(text string, slot Slot, decos ...Decoration) string {
	if !r.settings.ColorEnabled || r.settings.Depth == DepthNone {
		return text
	}

	st := r.settings.Depth.Profile().String(text).Foreground(r.termColor(slot))

	var want [numDecorations]bool
	for _, d := range decos {
		if d >= 0 && d < numDecorations {
			want[d] = true
		}
	}
	for d := Decoration(0); d < numDecorations; d++ {
		if !want[d] {
			continue
		}
		switch d {
		case Bold:
			st = st.Bold()
		case Italic:
			st = st.Italic()
		case Underline:
			st = st.Underline()
		case Dim:
			st = st.Faint()
		case Reverse:
			st = st.Reverse()
		case Strikethrough:
			st = st.CrossOut()
		}
	}
	return st.String()
}

// termColor quantizes a slot color to the active depth and wraps it in
// the matching termenv color type. termenv receives finished indices
// only and is never asked to convert anything itself.
func (r Renderer) termColor(slot Slot) termenv.Color {
	c := r.theme.Color(slot)
	switch r.settings.Depth {
	case Depth16:
		return termenv.ANSIColor(c.ANSI16())
	case Depth256:
		return termenv.ANSI256Color(c.ANSI256())
	default:
		return termenv.RGBColor(c.Hex())
	}
}

// Icon returns the rendering of an icon under the active emoji
// preference: the Unicode glyph when emoji output is on, the ASCII
// fallback otherwise. Identifiers outside the enumeration render as
// an empty string rather than an error; callers composing output lines
// should not have to unwind half-built strings over a bad constant.
func (r Renderer) Icon(icon Icon) string {
	s, err := r.theme.Icons().Resolve(icon, r.settings.EmojiEnabled)
	if err != nil {
		return ""
	}
	return s
}

// =============================================================================
// SEMANTIC HELPERS
// =============================================================================

// The helpers below are fixed slot and decoration bindings so call
// sites read as intent. Emphasis adds bold, links add underline;
// everything else is a bare slot color.

func (r Renderer) Success(text string) string   { return r.Style(text, SlotSuccess) }
func (r Renderer) Error(text string) string     { return r.Style(text, SlotError) }
func (r Renderer) Warning(text string) string   { return r.Style(text, SlotWarning) }
func (r Renderer) Info(text string) string      { return r.Style(text, SlotInfo) }
func (r Renderer) Primary(text string) string   { return r.Style(text, SlotPrimary) }
func (r Renderer) Secondary(text string) string { return r.Style(text, SlotSecondary) }
func (r Renderer) Muted(text string) string     { return r.Style(text, SlotMuted) }
func (r Renderer) Emphasis(text string) string  { return r.Style(text, SlotEmphasis, Bold) }
func (r Renderer) Accent(text string) string    { return r.Style(text, SlotAccent) }
func (r Renderer) Link(text string) string      { return r.Style(text, SlotLink, Underline) }
