// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and persists the UI preference document.
//
// The document carries the user's presentation choices (theme name,
// emoji use, color output mode) plus any custom theme definitions. It
// is raw data only: slot names and color values stay strings here and
// are validated where themes are built, so this package never depends
// on the rendering layer.
//
// # File Locations
//
// Preferences are read from (first match wins):
//   - ~/.swissarmyhammer/ui.toml
//   - ~/.swissarmyhammer/ui.yaml
//
// A missing file is not an error; Load returns (nil, nil) and callers
// fall back to detected defaults. A present but malformed file is a
// *ParseError.
//
// # Usage
//
// Load preferences:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // malformed file: warn and continue without it
//	}
//
// Watch for edits:
//
//	w, _ := config.NewWatcher(dir, nil, func(cfg *config.Config) {
//	    // rebuild the ui context from the fresh snapshot
//	})
//	go w.Run(ctx)
package config
