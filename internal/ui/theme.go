// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme.go - Named themes and the theme registry.
//
// A theme bundles a name, a complete palette and an icon set. The two
// built-in themes carry documented, stable palette values; custom
// themes come from user config and go through the same completeness
// check as the built-ins. Themes are values: once constructed they are
// never mutated, so a theme can be shared across goroutines freely.

package ui

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Kind classifies a theme by the background it is designed for.
type Kind int

const (
	KindDark Kind = iota
	KindLight
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDark:
		return "dark"
	case KindLight:
		return "light"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Theme is a named palette plus icon set. Treat as immutable: the
// accessors hand out value copies, and nothing here mutates after
// construction.
type Theme struct {
	name    string
	kind    Kind
	palette Palette
	icons   IconSet
}

func (t Theme) Name() string     { return t.name }
func (t Theme) Kind() Kind       { return t.kind }
func (t Theme) Palette() Palette { return t.palette }
func (t Theme) Icons() IconSet   { return t.icons }

// Color returns the palette color for a slot. Total for every
// enumeration value.
func (t Theme) Color(s Slot) Color {
	return t.palette.Color(s)
}

// =============================================================================
// BUILT-IN THEMES
// =============================================================================

// Built-in palette values are part of the public contract: callers may
// rely on them being identical across runs and releases.
var darkPalette = mustPalette(map[Slot]Color{
	SlotPrimary:    {100, 181, 246},
	SlotSecondary:  {206, 147, 216},
	SlotSuccess:    {129, 199, 132},
	SlotError:      {239, 83, 80},
	SlotWarning:    {255, 183, 77},
	SlotInfo:       {77, 208, 225},
	SlotMuted:      {158, 158, 158},
	SlotEmphasis:   {255, 255, 255},
	SlotBackground: {18, 18, 18},
	SlotForeground: {238, 238, 238},
	SlotAccent:     {255, 112, 167},
	SlotLink:       {100, 181, 246},
})

var lightPalette = mustPalette(map[Slot]Color{
	SlotPrimary:    {33, 150, 243},
	SlotSecondary:  {156, 39, 176},
	SlotSuccess:    {76, 175, 80},
	SlotError:      {244, 67, 54},
	SlotWarning:    {255, 152, 0},
	SlotInfo:       {0, 188, 212},
	SlotMuted:      {117, 117, 117},
	SlotEmphasis:   {33, 33, 33},
	SlotBackground: {255, 255, 255},
	SlotForeground: {33, 33, 33},
	SlotAccent:     {255, 64, 129},
	SlotLink:       {33, 150, 243},
})

// DefaultThemeName is the theme used when nothing else decides one.
const DefaultThemeName = "dark"

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return Theme{name: "dark", kind: KindDark, palette: darkPalette, icons: defaultIcons}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{name: "light", kind: KindLight, palette: lightPalette, icons: defaultIcons}
}

// NewCustomTheme builds a custom theme from a slot map. Missing slots
// fall back per NewPalette. A nil icons argument means the default
// icon set.
func NewCustomTheme(name string, colors map[Slot]Color, icons *IconSet) (Theme, error) {
	if strings.TrimSpace(name) == "" {
		return Theme{}, fmt.Errorf("custom theme: name must not be empty")
	}
	p, err := NewPalette(colors)
	if err != nil {
		return Theme{}, fmt.Errorf("custom theme %q: %w", name, err)
	}
	is := defaultIcons
	if icons != nil {
		is = *icons
	}
	return Theme{name: name, kind: KindCustom, palette: p, icons: is}, nil
}

// =============================================================================
// THEME REGISTRY
// =============================================================================

// UnknownThemeError reports a theme name that matches neither a
// built-in nor a registered custom theme.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Name)
}

// ThemeSet is the universe of themes available for lookup: the two
// built-ins plus any registered custom themes. Lookup names are
// NFC-normalized and case-folded, so "Dark", "dark" and a decomposed
// spelling of the same name all find the same theme.
//
// Not safe for concurrent mutation; register all themes before
// resolution begins.
type ThemeSet struct {
	custom map[string]Theme
}

// NewThemeSet returns a registry holding only the built-ins.
func NewThemeSet() *ThemeSet {
	return &ThemeSet{custom: make(map[string]Theme)}
}

func normalizeThemeName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// Register adds a custom theme. A custom theme sharing a built-in's
// name shadows the built-in for lookup; the built-in value itself is
// untouched and DarkTheme/LightTheme keep returning it.
func (ts *ThemeSet) Register(t Theme) {
	ts.custom[normalizeThemeName(t.Name())] = t
}

// Lookup finds a theme by name, custom themes first, then built-ins.
func (ts *ThemeSet) Lookup(name string) (Theme, error) {
	key := normalizeThemeName(name)
	if t, ok := ts.custom[key]; ok {
		return t, nil
	}
	switch key {
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, &UnknownThemeError{Name: name}
}

// Has reports whether a name resolves to some theme.
func (ts *ThemeSet) Has(name string) bool {
	_, err := ts.Lookup(name)
	return err == nil
}

// Names returns every resolvable theme name, sorted, built-ins
// included.
func (ts *ThemeSet) Names() []string {
	seen := map[string]bool{"dark": true, "light": true}
	names := []string{"dark", "light"}
	for _, t := range ts.custom {
		if !seen[normalizeThemeName(t.Name())] {
			seen[normalizeThemeName(t.Name())] = true
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	return names
}
