// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// context.go - Top-level assembly of the presentation layer.
//
// NewContext runs the whole pipeline once: load persisted preferences,
// register custom themes, detect terminal capability, resolve the
// effective settings and bind the theme. The result is an immutable
// snapshot; when the environment or the config file changes, callers
// build a new context instead of mutating the old one, which is what
// makes the snapshot safe to hand to every goroutine that prints.

package ui

import (
	"fmt"
	"log/slog"

	"github.com/samjhecht/swissarmyhammer/internal/config"
)

// Context is the assembled presentation state: resolved settings, the
// bound theme and the renderer over both. Contexts never mutate after
// construction.
type Context struct {
	Renderer
}

type options struct {
	logger     *slog.Logger
	cfg        *config.Config
	cfgLoaded  bool
	capability *Capability
	themes     *ThemeSet
}

// Option customizes context assembly.
type Option func(*options)

// WithLogger routes assembly warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfig supplies an already loaded preference document and skips
// the disk read. Passing nil means "no preferences", same as a missing
// file.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
		o.cfgLoaded = true
	}
}

// WithCapability supplies a pre-detected capability snapshot instead
// of probing the environment. Tests and embedders with their own
// detection use this.
func WithCapability(c Capability) Option {
	return func(o *options) { o.capability = &c }
}

// WithThemeSet supplies the theme universe to resolve against. Custom
// themes from config are registered into it, so callers sharing a set
// across contexts should expect that.
func WithThemeSet(ts *ThemeSet) Option {
	return func(o *options) { o.themes = ts }
}

// NewContext assembles a ready-to-use presentation context. It never
// fails: an unreadable config, a broken custom theme or an unknown
// theme name each degrade to the nearest sane default with a warning,
// because refusing to print is worse than printing with the wrong
// palette.
func NewContext(opts ...Option) *Context {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.themes == nil {
		o.themes = NewThemeSet()
	}

	if !o.cfgLoaded {
		cfg, err := config.Load()
		if err != nil {
			o.logger.Warn("ui config unreadable, continuing without preferences", "error", err)
		}
		o.cfg = cfg
	}

	if o.cfg != nil {
		for _, spec := range o.cfg.CustomThemes {
			t, err := ThemeFromSpec(spec)
			if err != nil {
				o.logger.Warn("skipping invalid custom theme", "error", err)
				continue
			}
			o.themes.Register(t)
		}
	}

	var capability Capability
	if o.capability != nil {
		capability = *o.capability
	} else {
		capability = Detect()
	}

	var prefs *config.Preferences
	if o.cfg != nil {
		prefs = &o.cfg.Preferences
	}
	settings := NewResolver(o.themes, o.logger).Resolve(prefs, capability)

	theme, err := o.themes.Lookup(settings.ThemeName)
	if err != nil {
		// The resolver only emits names it validated, so this is a
		// registry mutated between resolve and lookup. Fall back
		// rather than crash the process over cosmetics.
		o.logger.Warn("resolved theme vanished from registry, using dark", "theme", settings.ThemeName)
		theme = DarkTheme()
	}

	return &Context{Renderer: NewRenderer(theme, settings)}
}

// =============================================================================
// CONFIG BRIDGE
// =============================================================================

// ThemeFromSpec builds a theme from its raw config representation.
// Slot names, hex values and icon overrides are validated here; config
// itself stores them as plain strings.
func ThemeFromSpec(spec config.ThemeSpec) (Theme, error) {
	colors := make(map[Slot]Color, len(spec.Colors))
	for name, hex := range spec.Colors {
		slot, ok := ParseSlot(name)
		if !ok {
			return Theme{}, fmt.Errorf("theme %q: unknown color slot %q", spec.Name, name)
		}
		c, err := ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q, slot %s: %w", spec.Name, slot, err)
		}
		colors[slot] = c
	}

	var icons *IconSet
	if len(spec.Icons) > 0 {
		set := DefaultIconSet()
		for name, ov := range spec.Icons {
			icon, ok := ParseIcon(name)
			if !ok {
				return Theme{}, fmt.Errorf("theme %q: unknown icon %q", spec.Name, name)
			}
			var err error
			set, err = set.With(icon, ov.Glyph, ov.ASCII)
			if err != nil {
				return Theme{}, fmt.Errorf("theme %q: %w", spec.Name, err)
			}
		}
		icons = &set
	}

	return NewCustomTheme(spec.Name, colors, icons)
}
