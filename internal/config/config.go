// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/samjhecht/swissarmyhammer/internal/util"
)

// =============================================================================
// DOCUMENT STRUCTURES
// =============================================================================

// ColorMode controls when colored output is used.
type ColorMode string

const (
	// ColorAuto defers to terminal capability.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output even when stdout is not a terminal.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

// Valid reports whether the mode is one of the recognized values.
// The empty string counts: an absent field means auto.
func (m ColorMode) Valid() bool {
	switch m {
	case "", ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Preferences are the persisted user settings. UseEmojis is a pointer
// so an absent field is distinguishable from an explicit false; the
// resolver only honors values the user actually wrote.
type Preferences struct {
	Theme       string    `toml:"theme" yaml:"theme"`
	UseEmojis   *bool     `toml:"use_emojis,omitempty" yaml:"use_emojis,omitempty"`
	ColorOutput ColorMode `toml:"color_output" yaml:"color_output"`
}

// IconSpec overrides one icon's spellings in a custom theme.
type IconSpec struct {
	Glyph string `toml:"glyph" yaml:"glyph"`
	ASCII string `toml:"ascii" yaml:"ascii"`
}

// ThemeSpec is a custom theme exactly as written in the file: slot
// names mapped to hex color strings, plus optional icon overrides.
// Color and slot validation happens where themes are constructed.
type ThemeSpec struct {
	Name   string              `toml:"name" yaml:"name"`
	Colors map[string]string   `toml:"colors" yaml:"colors"`
	Icons  map[string]IconSpec `toml:"icons,omitempty" yaml:"icons,omitempty"`
}

// Config is the whole preference document.
type Config struct {
	Preferences  Preferences `toml:"preferences" yaml:"preferences"`
	CustomThemes []ThemeSpec `toml:"themes,omitempty" yaml:"themes,omitempty"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ParseError reports a preference file that exists but cannot be
// decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a preference field with a value outside its
// domain.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks fields with closed domains. Load does not call it;
// callers decide whether a bad value is fatal or just worth a warning.
func (c *Config) Validate() error {
	if !c.Preferences.ColorOutput.Valid() {
		return &ValidationError{
			Field:   "color_output",
			Message: fmt.Sprintf("must be auto, always or never, got %q", c.Preferences.ColorOutput),
		}
	}
	for i, spec := range c.CustomThemes {
		if strings.TrimSpace(spec.Name) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("themes[%d].name", i),
				Message: "must not be empty",
			}
		}
	}
	return nil
}

// =============================================================================
// FILE LOCATIONS
// =============================================================================

const (
	// DirName is the per-user config directory under $HOME.
	DirName = ".swissarmyhammer"

	tomlName = "ui.toml"
	yamlName = "ui.yaml"
)

// DefaultDir returns the per-user config directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the preference document from the default directory.
func Load() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads the preference document from dir, trying ui.toml
// first and ui.yaml second. Neither file existing returns (nil, nil):
// no preferences is a normal state, not an error. A file that exists
// but does not decode returns a *ParseError naming it.
func LoadFrom(dir string) (*Config, error) {
	tomlPath := filepath.Join(dir, tomlName)
	data, err := os.ReadFile(tomlPath)
	switch {
	case err == nil:
		var cfg Config
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, &ParseError{Path: tomlPath, Err: err}
		}
		cfg.normalize()
		return &cfg, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read config %s: %w", tomlPath, err)
	}

	yamlPath := filepath.Join(dir, yamlName)
	data, err = os.ReadFile(yamlPath)
	switch {
	case err == nil:
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ParseError{Path: yamlPath, Err: err}
		}
		cfg.normalize()
		return &cfg, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read config %s: %w", yamlPath, err)
	}

	return nil, nil
}

// normalize cleans up cosmetic variation so the rest of the code
// compares exact values.
func (c *Config) normalize() {
	c.Preferences.Theme = strings.TrimSpace(c.Preferences.Theme)
	c.Preferences.ColorOutput = ColorMode(
		strings.ToLower(strings.TrimSpace(string(c.Preferences.ColorOutput))))
}

// =============================================================================
// SAVING
// =============================================================================

const fileHeader = `# swissarmyhammer UI preferences.
# theme: dark | light | <custom theme name>
# use_emojis: true | false
# color_output: auto | always | never

`

// Save writes the document as TOML to the default directory.
func Save(cfg *Config) error {
	dir, err := DefaultDir()
	if err != nil {
		return err
	}
	return SaveTo(dir, cfg)
}

// SaveTo writes the document as TOML to dir. The write is atomic and
// the file is user-only (0600); the directory is created 0700 when
// missing.
func SaveTo(dir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return util.AtomicWrite(filepath.Join(dir, tomlName), buf.Bytes(), 0o600, 0o700)
}
