// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// palette.go - Semantic color slots and complete palettes.
//
// A palette maps every semantic slot to a concrete color. Completeness
// is established once, at construction: slots missing from the input
// fall back to the foreground or primary anchor, and a palette whose
// anchors are themselves missing is rejected. Render paths can then
// index any slot without a presence check.

package ui

import "strings"

// Slot identifies a semantic color role in a palette.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
	SlotSuccess
	SlotError
	SlotWarning
	SlotInfo
	SlotMuted
	SlotEmphasis
	SlotBackground
	SlotForeground
	SlotAccent
	SlotLink

	numSlots
)

var slotNames = [numSlots]string{
	SlotPrimary:    "primary",
	SlotSecondary:  "secondary",
	SlotSuccess:    "success",
	SlotError:      "error",
	SlotWarning:    "warning",
	SlotInfo:       "info",
	SlotMuted:      "muted",
	SlotEmphasis:   "emphasis",
	SlotBackground: "background",
	SlotForeground: "foreground",
	SlotAccent:     "accent",
	SlotLink:       "link",
}

func (s Slot) String() string {
	if s < 0 || s >= numSlots {
		return "invalid"
	}
	return slotNames[s]
}

// ParseSlot maps a slot name from a config file to its identifier.
// Matching is case-insensitive. "header" is accepted as an alias for
// "emphasis" so older theme files keep working.
func ParseSlot(name string) (Slot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "header" {
		return SlotEmphasis, true
	}
	for s, n := range slotNames {
		if n == name {
			return Slot(s), true
		}
	}
	return 0, false
}

// IncompletePaletteError reports a palette that cannot be completed
// because one or both fallback anchors are missing from the input.
type IncompletePaletteError struct {
	Missing []Slot
}

func (e *IncompletePaletteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = s.String()
	}
	return "incomplete palette: missing required slots: " + strings.Join(names, ", ")
}

// Palette is a complete slot-to-color mapping. The zero value is all
// black; palettes intended for rendering come from NewPalette, which
// guarantees every slot is populated.
type Palette struct {
	colors [numSlots]Color
}

// fallbackAnchor returns the slot a missing slot inherits from.
// Text-like slots follow the foreground; signal and accent slots follow
// the primary. The anchors map to themselves.
func fallbackAnchor(s Slot) Slot {
	switch s {
	case SlotSecondary, SlotMuted, SlotEmphasis, SlotBackground:
		return SlotForeground
	case SlotSuccess, SlotError, SlotWarning, SlotInfo, SlotAccent, SlotLink:
		return SlotPrimary
	default:
		return s
	}
}

// NewPalette builds a complete palette from a possibly partial slot
// map. Missing slots inherit from their anchor (foreground or primary)
// here, never later at render time. If either anchor is absent the
// palette cannot be completed and an IncompletePaletteError names the
// missing anchors.
func NewPalette(colors map[Slot]Color) (Palette, error) {
	var missing []Slot
	for _, anchor := range [...]Slot{SlotPrimary, SlotForeground} {
		if _, ok := colors[anchor]; !ok {
			missing = append(missing, anchor)
		}
	}
	if len(missing) > 0 {
		return Palette{}, &IncompletePaletteError{Missing: missing}
	}

	var p Palette
	for s := Slot(0); s < numSlots; s++ {
		c, ok := colors[s]
		if !ok {
			c = colors[fallbackAnchor(s)]
		}
		p.colors[s] = c
	}
	return p, nil
}

// Color returns the color bound to a slot. Total for every enumeration
// value; out-of-range slots read as the foreground so a corrupted slot
// value still renders legible text.
func (p Palette) Color(s Slot) Color {
	if s < 0 || s >= numSlots {
		return p.colors[SlotForeground]
	}
	return p.colors[s]
}

func mustPalette(colors map[Slot]Color) Palette {
	p, err := NewPalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}
