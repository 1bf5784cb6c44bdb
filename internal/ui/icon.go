// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// icon.go - Icon identifiers with Unicode glyphs and ASCII fallbacks.
//
// Every icon carries two spellings: a Unicode glyph for terminals that
// render it, and a printable 7-bit fallback for everything else. The
// fallback strings are deliberately plain so they survive log files,
// CI transcripts and dumb terminals unchanged.

package ui

import (
	"fmt"
	"strings"
)

// Icon identifies a glyph in an IconSet.
type Icon int

const (
	IconSuccess Icon = iota
	IconError
	IconWarning
	IconInfo
	IconArrow
	IconBullet
	IconCheck
	IconCross
	IconQuestion
	IconSearch
	IconFolder
	IconFile
	IconLock
	IconUnlock
	IconStar
	IconHeart
	IconFire
	IconLightning
	IconSparkles
	IconRocket

	numIcons
)

var iconNames = [numIcons]string{
	IconSuccess:   "success",
	IconError:     "error",
	IconWarning:   "warning",
	IconInfo:      "info",
	IconArrow:     "arrow",
	IconBullet:    "bullet",
	IconCheck:     "check",
	IconCross:     "cross",
	IconQuestion:  "question",
	IconSearch:    "search",
	IconFolder:    "folder",
	IconFile:      "file",
	IconLock:      "lock",
	IconUnlock:    "unlock",
	IconStar:      "star",
	IconHeart:     "heart",
	IconFire:      "fire",
	IconLightning: "lightning",
	IconSparkles:  "sparkles",
	IconRocket:    "rocket",
}

func (i Icon) String() string {
	if i < 0 || i >= numIcons {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return iconNames[i]
}

// ParseIcon maps an icon name from a config file to its identifier.
// Matching is case-insensitive.
func ParseIcon(name string) (Icon, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range iconNames {
		if n == name {
			return Icon(i), true
		}
	}
	return 0, false
}

// UnknownIconError reports an icon identifier outside the enumeration.
type UnknownIconError struct {
	Icon Icon
}

func (e *UnknownIconError) Error() string {
	return fmt.Sprintf("unknown icon identifier %d", int(e.Icon))
}

type iconGlyphs struct {
	glyph string
	ascii string
}

// IconSet maps every icon identifier to its glyph and ASCII fallback.
// Value semantics: copies are independent, the default set is never
// mutated in place.
type IconSet struct {
	glyphs [numIcons]iconGlyphs
}

var defaultIcons = IconSet{glyphs: [numIcons]iconGlyphs{
	IconSuccess:   {"✓", "[OK]"},
	IconError:     {"✗", "[X]"},
	IconWarning:   {"⚠", "[!]"},
	IconInfo:      {"ℹ", "[i]"},
	IconArrow:     {"→", "->"},
	IconBullet:    {"•", "*"},
	IconCheck:     {"✓", "[v]"},
	IconCross:     {"✗", "[x]"},
	IconQuestion:  {"?", "[?]"},
	IconSearch:    {"🔍", "[S]"},
	IconFolder:    {"📁", "[D]"},
	IconFile:      {"📄", "[F]"},
	IconLock:      {"🔒", "[L]"},
	IconUnlock:    {"🔓", "[U]"},
	IconStar:      {"⭐", "[*]"},
	IconHeart:     {"❤", "[<3]"},
	IconFire:      {"🔥", "[!]"},
	IconLightning: {"⚡", "[!]"},
	IconSparkles:  {"✨", "[*]"},
	IconRocket:    {"🚀", "[^]"},
}}

// DefaultIconSet returns the standard icon set.
func DefaultIconSet() IconSet {
	return defaultIcons
}

// Resolve returns the rendering of an icon: the Unicode glyph when
// emoji output is enabled, the printable-ASCII fallback otherwise.
// Identifiers inside the enumeration always resolve in both modes;
// anything else fails with UnknownIconError.
func (s IconSet) Resolve(icon Icon, emoji bool) (string, error) {
	if icon < 0 || icon >= numIcons {
		return "", &UnknownIconError{Icon: icon}
	}
	g := s.glyphs[icon]
	if emoji {
		return g.glyph, nil
	}
	return g.ascii, nil
}

// With returns a copy of the set with one icon replaced. The ASCII
// fallback must stay printable 7-bit; overrides violating that are
// rejected so degraded output never smuggles in multi-byte runes.
func (s IconSet) With(icon Icon, glyph, ascii string) (IconSet, error) {
	if icon < 0 || icon >= numIcons {
		return s, &UnknownIconError{Icon: icon}
	}
	if !printableASCII(ascii) {
		return s, fmt.Errorf("icon %s: ascii fallback %q is not printable ASCII", icon, ascii)
	}
	s.glyphs[icon] = iconGlyphs{glyph: glyph, ascii: ascii}
	return s, nil
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
