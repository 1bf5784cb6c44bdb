// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// resolve.go - Layered preference resolution.
//
// CONFIG: environment beats persisted config beats detected capability
//
// Resolution merges three layers into one Settings value. Each setting
// is decided by the strongest layer that speaks: the conventional
// NO_COLOR/FORCE_COLOR variables first, then the SAH_* overrides, then
// the preference file, then capability defaults. Resolution is total;
// bad input degrades with a warning and the chain moves on, so callers
// always get a usable Settings back.

package ui

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/samjhecht/swissarmyhammer/internal/config"
)

// Environment variables honored by the resolver.
const (
	// EnvTheme selects the theme by name for one invocation.
	EnvTheme = "SAH_THEME"
	// EnvUseEmojis overrides emoji output; values parse like strconv.ParseBool.
	EnvUseEmojis = "SAH_USE_EMOJIS"

	envNoColor    = "NO_COLOR"
	envForceColor = "FORCE_COLOR"
)

// Settings is the fully resolved presentation state. It is an
// immutable snapshot: a changed environment or edited preference file
// means resolving again, never mutating an existing value.
type Settings struct {
	ThemeName    string
	Depth        ColorDepth
	ColorEnabled bool
	EmojiEnabled bool
}

// Resolver merges environment, persisted preferences and detected
// capability into Settings.
type Resolver struct {
	themes *ThemeSet
	logger *slog.Logger
}

// NewResolver builds a resolver validating theme names against the
// given set. A nil set means built-ins only; a nil logger means
// slog.Default().
func NewResolver(themes *ThemeSet, logger *slog.Logger) *Resolver {
	if themes == nil {
		themes = NewThemeSet()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{themes: themes, logger: logger}
}

// Resolve produces Settings for the given persisted preferences and
// capability snapshot. prefs may be nil (no preference file). The
// call never fails: unknown theme names and unparsable values warn
// and fall through to the next layer.
func (r *Resolver) Resolve(prefs *config.Preferences, capability Capability) Settings {
	s := Settings{Depth: capability.Depth}

	// NO_COLOR is absolute: present with any value, color is off and
	// nothing later re-enables it. FORCE_COLOR is the opposite pole
	// but yields to NO_COLOR.
	colorDecided := false
	if _, ok := os.LookupEnv(envNoColor); ok {
		s.ColorEnabled = false
		colorDecided = true
	} else if _, ok := os.LookupEnv(envForceColor); ok {
		s.ColorEnabled = true
		colorDecided = true
		s.Depth = liftDepth(s.Depth)
	}

	themeDecided := false
	if name, ok := os.LookupEnv(EnvTheme); ok {
		if r.themes.Has(name) {
			s.ThemeName = name
			themeDecided = true
		} else {
			r.logger.Warn("unknown theme requested, falling back",
				"source", EnvTheme, "theme", name)
		}
	}

	emojiDecided := false
	if v, ok := os.LookupEnv(EnvUseEmojis); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.EmojiEnabled = b
			emojiDecided = true
		} else {
			r.logger.Warn("unparsable emoji override ignored",
				"source", EnvUseEmojis, "value", v)
		}
	}

	// The preference file fills whatever is still open.
	if prefs != nil {
		if !themeDecided && prefs.Theme != "" {
			if r.themes.Has(prefs.Theme) {
				s.ThemeName = prefs.Theme
				themeDecided = true
			} else {
				r.logger.Warn("unknown theme requested, falling back",
					"source", "config", "theme", prefs.Theme)
			}
		}
		if !emojiDecided && prefs.UseEmojis != nil {
			s.EmojiEnabled = *prefs.UseEmojis
			emojiDecided = true
		}
		if !colorDecided {
			switch prefs.ColorOutput {
			case config.ColorAlways:
				s.ColorEnabled = true
				colorDecided = true
				s.Depth = liftDepth(s.Depth)
			case config.ColorNever:
				s.ColorEnabled = false
				colorDecided = true
			case config.ColorAuto, "":
				// Defer to capability.
			default:
				r.logger.Warn("unknown color_output value ignored",
					"value", prefs.ColorOutput)
			}
		}
	}

	// Capability defaults close the remaining gaps.
	if !colorDecided {
		s.ColorEnabled = capability.IsTTY && capability.Depth != DepthNone
	}
	if !themeDecided {
		if capability.Background == BackgroundLight {
			s.ThemeName = "light"
		} else {
			s.ThemeName = DefaultThemeName
		}
	}
	if !emojiDecided {
		s.EmojiEnabled = capability.Unicode
	}

	return s
}

// liftDepth gives a forced-on renderer a palette to render with: a
// terminal that probed as colorless still gets the 16-color floor
// when color is explicitly forced.
func liftDepth(d ColorDepth) ColorDepth {
	if d == DepthNone {
		return Depth16
	}
	return d
}
